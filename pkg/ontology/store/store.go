package store

import (
	"context"
	"time"
)

// Store persists indexed ontology runs
type Store interface {
	Close() error

	// Runs
	SaveRun(ctx context.Context, run Run, entries []Entry) error
	LatestRun(ctx context.Context) (Run, bool, error)

	// Entries
	GetEntry(ctx context.Context, runID, name string) (Entry, bool, error)
	Children(ctx context.Context, runID, name string) ([]Entry, error)
	Entries(ctx context.Context, runID string) ([]Entry, error)
}

// Run represents one indexing pass over an ontology source
type Run struct {
	ID        string // ULID, sortable by creation time
	Source    string // input the run was built from
	Extension string
	CreatedAt time.Time
	Nodes     int
}

// Entry represents one resolved node within a run
type Entry struct {
	RunID    string
	Position int // breadth-first order, root is 0
	Name     string
	Parent   string // empty for the root
	Code     string // empty when the node has no code
	Path     string // slash-separated scaffold path
	Depth    int
}

// IsRoot reports whether the entry is the run's root
func (e Entry) IsRoot() bool { return e.Parent == "" }
