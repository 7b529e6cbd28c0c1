package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/node"
	"github.com/cognicore/ecc/pkg/ontology/paths"
)

// ErrEmptyFile is reported for node files with no YAML document.
var ErrEmptyFile = fmt.Errorf("%w: empty node file", internalerr.ErrInvalidInput)

// MisplacedFileError reports a node file whose name does not match the node
type MisplacedFileError struct {
	Path     string
	Expected string
}

func (e *MisplacedFileError) Error() string {
	return fmt.Sprintf("%s: expected file name %s", e.Path, e.Expected)
}

func (e *MisplacedFileError) Unwrap() error { return internalerr.ErrInvalidInput }

// FileResult is the outcome of checking one file
type FileResult struct {
	Path string // slash-separated, relative to the checked root
	Node node.Node
	Err  error
}

// OK reports whether the file decoded into a valid node
func (r FileResult) OK() bool { return r.Err == nil }

// Report lists the checked files in lexical order
type Report struct {
	Results []FileResult
}

// Failed returns the results that did not pass
func (r Report) Failed() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every file passed
func (r Report) OK() bool { return len(r.Failed()) == 0 }

// Check decodes every file matching **/*<ext> under root as a node. Names
// are re-validated on decode and each file name must be the node's segment.
// Per-file problems land in the report; the error is for failures to walk
// the tree.
func Check(ctx context.Context, root, ext string) (Report, error) {
	if ext == "" {
		ext = paths.DefaultExtension
	}

	info, err := os.Stat(root)
	if err != nil {
		return Report{}, err
	}
	if !info.IsDir() {
		return Report{}, fmt.Errorf("%w: %s is not a directory", internalerr.ErrInvalidInput, root)
	}

	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, "**/*"+ext, doublestar.WithFilesOnly())
	if err != nil {
		return Report{}, fmt.Errorf("glob %s: %w", root, err)
	}
	sort.Strings(matches)

	var report Report
	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := FileResult{Path: match}
		res.Node, res.Err = checkFile(filepath.Join(root, filepath.FromSlash(match)), match, ext)
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func checkFile(file, rel, ext string) (node.Node, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return node.Node{}, err
	}

	var n node.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return node.Node{}, ErrEmptyFile
		}
		return node.Node{}, err
	}

	expected := paths.Segment(n.Name()) + ext
	if path.Base(rel) != expected {
		return n, &MisplacedFileError{Path: rel, Expected: expected}
	}
	return n, nil
}
