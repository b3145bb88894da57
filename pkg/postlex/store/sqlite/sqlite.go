// Package sqlite implements the Store interface on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/coinsight/postlex/pkg/postlex/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database with WAL mode enabled and the
// schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	is_chinese INTEGER NOT NULL DEFAULT 0,
	analyzed_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS analysis_terms (
	analysis_id TEXT NOT NULL,
	term TEXT NOT NULL,
	UNIQUE(analysis_id, term),
	FOREIGN KEY(analysis_id) REFERENCES analyses(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS term_freq (
	term TEXT PRIMARY KEY,
	count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analysis_terms_term ON analysis_terms(term);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) RecordAnalysis(ctx context.Context, a store.Analysis) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	isZh := 0
	if a.IsChinese {
		isZh = 1
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO analyses (id, is_chinese, analyzed_at) VALUES (?, ?, ?)",
		a.ID, isZh, a.AnalyzedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return err
	}

	for _, term := range a.Words {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO analysis_terms (analysis_id, term) VALUES (?, ?)",
			a.ID, term,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO term_freq (term, count) VALUES (?, 1) ON CONFLICT(term) DO UPDATE SET count = count + 1",
			term,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *sqliteStore) TermCounts(ctx context.Context, limit int) ([]store.TermCount, error) {
	q := "SELECT term, count FROM term_freq ORDER BY count DESC, term ASC"
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.TermCount
	for rows.Next() {
		var tc store.TermCount
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (s *sqliteStore) TotalPosts(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM analyses").Scan(&n)
	return n, err
}
