// Package store defines persistence for analysis output: one record per
// analysed post and accumulated term frequencies.
package store

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Analysis is one analysed post as recorded by a Store.
type Analysis struct {
	ID         string
	IsChinese  bool
	Words      []string
	AnalyzedAt time.Time
}

// TermCount is one row of the frequency table.
type TermCount struct {
	Term  string
	Count int64
}

// Store persists analyses and term frequencies.
type Store interface {
	// RecordAnalysis stores the analysis row and increments the count of
	// every word in it by one.
	RecordAnalysis(ctx context.Context, a Analysis) error
	// TermCounts returns terms ordered by count descending, ties broken
	// by term ascending. limit <= 0 returns all.
	TermCounts(ctx context.Context, limit int) ([]TermCount, error)
	// TotalPosts returns the number of recorded analyses.
	TotalPosts(ctx context.Context) (int64, error)
	Close() error
}

// NewID returns a fresh ULID for an analysis record.
func NewID() string {
	return ulid.Make().String()
}
