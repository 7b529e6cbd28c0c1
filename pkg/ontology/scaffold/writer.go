// Package scaffold lays a resolved ontology out on disk as one YAML file per
// node and checks existing layouts.
package scaffold

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ecc/pkg/ontology"
	"github.com/cognicore/ecc/pkg/ontology/node"
	"github.com/cognicore/ecc/pkg/ontology/paths"
)

// Writer scaffolds ontologies under Root
type Writer struct {
	Root   string
	Logger *slog.Logger // nil discards
}

// Summary counts what a Write produced
type Summary struct {
	Files       int
	Directories int
}

// Write creates one file per entry in breadth-first order. Existing files
// are overwritten. The context is checked before every file.
func (w Writer) Write(ctx context.Context, o *ontology.Ontology) (Summary, error) {
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var sum Summary
	dirs := make(map[string]struct{})

	err := o.Walk(func(e paths.Entry, n node.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := filepath.Join(w.Root, e.Dir())
		if _, ok := dirs[dir]; !ok {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", dir, err)
			}
			dirs[dir] = struct{}{}
			sum.Directories++
		}

		file := filepath.Join(w.Root, e.Path())
		if err := writeNode(file, n); err != nil {
			return err
		}
		sum.Files++

		logger.Debug("Wrote node", slog.String("name", n.Name().String()), slog.String("path", file))
		return nil
	})
	if err != nil {
		return sum, err
	}

	logger.Info("Scaffolded ontology",
		slog.String("root", w.Root),
		slog.Int("files", sum.Files),
		slog.Int("directories", sum.Directories))
	return sum, nil
}

func writeNode(path string, n node.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	enc := yaml.NewEncoder(bw)
	if err := enc.Encode(n); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
