// Package index records resolved ontologies in a store so they can be
// queried without re-reading the source rows.
package index

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/ecc/pkg/ontology"
	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/store"
)

// Recorder assigns run ids and saves ontologies
type Recorder struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a recorder writing to st. A nil logger discards output.
func New(st store.Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Recorder{
		store:   st,
		logger:  logger,
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Record saves every entry of o as a new run and returns it
func (r *Recorder) Record(ctx context.Context, source string, o *ontology.Ontology) (store.Run, error) {
	created := r.now().UTC()

	r.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(created), r.entropy).String()
	r.mu.Unlock()

	run := store.Run{
		ID:        id,
		Source:    source,
		Extension: extension(o),
		CreatedAt: created,
		Nodes:     o.Len(),
	}

	entries := make([]store.Entry, 0, o.Len())
	for pos, e := range o.Entries {
		n := o.Node(e)
		code, _ := n.Code()
		entries = append(entries, store.Entry{
			RunID:    id,
			Position: pos,
			Name:     n.Name().String(),
			Parent:   n.Parent().String(),
			Code:     code,
			Path:     filepath.ToSlash(e.Path()),
			Depth:    e.Depth(),
		})
	}

	if err := r.store.SaveRun(ctx, run, entries); err != nil {
		return store.Run{}, fmt.Errorf("save run: %w", err)
	}

	r.logger.Info("Indexed ontology",
		slog.String("run", id),
		slog.String("source", source),
		slog.Int("nodes", run.Nodes))
	return run, nil
}

func extension(o *ontology.Ontology) string {
	if o.Len() == 0 {
		return ""
	}
	return path.Ext(filepath.ToSlash(o.Root().Path()))
}

// Description is a node as seen in the latest run
type Description struct {
	Run      store.Run
	Entry    store.Entry
	Children []store.Entry
}

// Describe looks name up in the most recent run
func Describe(ctx context.Context, st store.Store, name string) (Description, error) {
	run, found, err := st.LatestRun(ctx)
	if err != nil {
		return Description{}, fmt.Errorf("latest run: %w", err)
	}
	if !found {
		return Description{}, fmt.Errorf("%w: no indexed runs", internalerr.ErrNotFound)
	}

	entry, found, err := st.GetEntry(ctx, run.ID, name)
	if err != nil {
		return Description{}, fmt.Errorf("get entry: %w", err)
	}
	if !found {
		return Description{}, fmt.Errorf("%w: %q in run %s", internalerr.ErrNotFound, name, run.ID)
	}

	children, err := st.Children(ctx, run.ID, name)
	if err != nil {
		return Description{}, fmt.Errorf("children: %w", err)
	}

	return Description{Run: run, Entry: entry, Children: children}, nil
}
