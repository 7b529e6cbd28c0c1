package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/store"
)

func entries(runID string) []store.Entry {
	return []store.Entry{
		{RunID: runID, Position: 2, Name: "Lymphoma", Parent: "Neoplasm", Path: "neoplasm/lymphoma.yml", Depth: 1},
		{RunID: runID, Position: 0, Name: "Neoplasm", Path: "neoplasm.yml"},
		{RunID: runID, Position: 1, Name: "Leukemia", Parent: "Neoplasm", Code: "LEUK", Path: "neoplasm/leukemia.yml", Depth: 1},
	}
}

func TestSaveRun_QueryByName(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.SaveRun(ctx, store.Run{ID: "r1", CreatedAt: time.Now()}, entries("r1")); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	e, found, err := s.GetEntry(ctx, "r1", "Leukemia")
	if err != nil || !found {
		t.Fatalf("GetEntry: found=%v err=%v", found, err)
	}
	if e.Code != "LEUK" {
		t.Errorf("expected code LEUK, got %q", e.Code)
	}

	if _, found, _ := s.GetEntry(ctx, "r2", "Leukemia"); found {
		t.Error("entry should be scoped to its run")
	}
}

func TestEntries_SortedByPosition(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.SaveRun(ctx, store.Run{ID: "r1"}, entries("r1")); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	all, err := s.Entries(ctx, "r1")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	for i, e := range all {
		if e.Position != i {
			t.Errorf("entry %d has position %d", i, e.Position)
		}
	}

	// Mutating the result must not affect the store
	all[0].Name = "changed"
	again, _ := s.Entries(ctx, "r1")
	if again[0].Name != "Neoplasm" {
		t.Error("Entries should return a copy")
	}
}

func TestChildren_ExcludesRoot(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.SaveRun(ctx, store.Run{ID: "r1"}, entries("r1")); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	children, _ := s.Children(ctx, "r1", "Neoplasm")
	if len(children) != 2 || children[0].Name != "Leukemia" || children[1].Name != "Lymphoma" {
		t.Errorf("unexpected children: %+v", children)
	}

	none, _ := s.Children(ctx, "r1", "")
	if len(none) != 0 {
		t.Errorf("empty parent should have no children, got %+v", none)
	}
}

func TestSaveRun_Duplicates(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.SaveRun(ctx, store.Run{ID: "r1"}, entries("r1")); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.SaveRun(ctx, store.Run{ID: "r1"}, nil); !errors.Is(err, internalerr.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for repeated run, got %v", err)
	}

	dup := append(entries("r2"), store.Entry{RunID: "r2", Position: 3, Name: "Leukemia"})
	if err := s.SaveRun(ctx, store.Run{ID: "r2"}, dup); !errors.Is(err, internalerr.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for repeated name, got %v", err)
	}
	if _, found, _ := s.GetEntry(ctx, "r2", "Neoplasm"); found {
		t.Error("rejected run should not be stored")
	}

	if err := s.SaveRun(ctx, store.Run{}, nil); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing id, got %v", err)
	}
}

func TestLatestRun(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, found, _ := s.LatestRun(ctx); found {
		t.Fatal("empty store should have no latest run")
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.SaveRun(ctx, store.Run{ID: "b", CreatedAt: base.Add(time.Hour)}, nil)
	s.SaveRun(ctx, store.Run{ID: "a", CreatedAt: base}, nil)
	s.SaveRun(ctx, store.Run{ID: "c", CreatedAt: base.Add(time.Hour)}, nil)

	latest, found, err := s.LatestRun(ctx)
	if err != nil || !found {
		t.Fatalf("LatestRun: found=%v err=%v", found, err)
	}
	if latest.ID != "c" {
		t.Errorf("expected run c, got %s", latest.ID)
	}
}
