// Package memstore is the in-memory Store used by tests and as the CLI
// default when no database path is given.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/coinsight/postlex/pkg/postlex/internalerr"
	"github.com/coinsight/postlex/pkg/postlex/store"
)

type memStore struct {
	mu       sync.Mutex
	analyses map[string]store.Analysis
	counts   map[string]int64
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{
		analyses: make(map[string]store.Analysis),
		counts:   make(map[string]int64),
	}
}

func (m *memStore) RecordAnalysis(_ context.Context, a store.Analysis) error {
	if a.ID == "" {
		return fmt.Errorf("%w: analysis without id", internalerr.ErrInvalidInput)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.analyses[a.ID]; dup {
		return fmt.Errorf("%w: analysis %s", internalerr.ErrInvalidInput, a.ID)
	}
	cp := a
	cp.Words = append([]string(nil), a.Words...)
	m.analyses[a.ID] = cp
	for _, w := range cp.Words {
		m.counts[w]++
	}
	return nil
}

func (m *memStore) TermCounts(_ context.Context, limit int) ([]store.TermCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.TermCount, 0, len(m.counts))
	for term, count := range m.counts {
		out = append(out, store.TermCount{Term: term, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) TotalPosts(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.analyses)), nil
}

func (m *memStore) Close() error {
	return nil
}
