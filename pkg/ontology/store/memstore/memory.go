package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/store"
)

// Store is an in-memory implementation of store.Store for tests and dry runs.
type Store struct {
	mu      sync.RWMutex
	runs    map[string]store.Run
	entries map[string][]store.Entry
	latest  string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:    make(map[string]store.Run),
		entries: make(map[string][]store.Entry),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun stores a run and a copy of its entries.
func (s *Store) SaveRun(ctx context.Context, run store.Run, entries []store.Entry) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run without id", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[run.ID]; ok {
		return fmt.Errorf("%w: run %s", internalerr.ErrDuplicate, run.ID)
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("%w: entry %q in run %s", internalerr.ErrDuplicate, e.Name, run.ID)
		}
		seen[e.Name] = struct{}{}
	}

	s.runs[run.ID] = run
	stored := append([]store.Entry(nil), entries...)
	sort.SliceStable(stored, func(i, j int) bool { return stored[i].Position < stored[j].Position })
	s.entries[run.ID] = stored
	if s.latest == "" || newer(run, s.runs[s.latest]) {
		s.latest = run.ID
	}
	return nil
}

// newer matches the sqlite ordering: creation time, then id.
func newer(a, b store.Run) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// LatestRun returns the most recently created run.
func (s *Store) LatestRun(ctx context.Context) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == "" {
		return store.Run{}, false, nil
	}
	return s.runs[s.latest], true, nil
}

// GetEntry returns an entry by node name.
func (s *Store) GetEntry(ctx context.Context, runID, name string) (store.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries[runID] {
		if e.Name == name {
			return e, true, nil
		}
	}
	return store.Entry{}, false, nil
}

// Children returns the direct children of a node in stored order.
func (s *Store) Children(ctx context.Context, runID, name string) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Entry
	for _, e := range s.entries[runID] {
		if e.Parent == name && !e.IsRoot() {
			out = append(out, e)
		}
	}
	return out, nil
}

// Entries returns a copy of every entry in a run.
func (s *Store) Entries(ctx context.Context, runID string) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.entries[runID]
	if !ok {
		return nil, nil
	}
	return append([]store.Entry(nil), entries...), nil
}
