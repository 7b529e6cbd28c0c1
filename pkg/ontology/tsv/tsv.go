// Package tsv reads ontology rows from tab-separated text.
//
// The first line is a header naming the columns. "name" and "parent" are
// required; "code" is optional. Every row is validated before anything is
// returned, and all row problems are reported together.
package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/name"
	"github.com/cognicore/ecc/pkg/ontology/node"
)

// Column names.
const (
	ColumnName   = "name"
	ColumnParent = "parent"
	ColumnCode   = "code"
)

// ErrNoHeader is returned for input without a header line.
var ErrNoHeader = fmt.Errorf("missing header row: %w", internalerr.ErrInvalidInput)

// MissingColumnError is returned when the header lacks a required column.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return "header is missing required column: " + e.Column
}

func (e *MissingColumnError) Unwrap() error { return internalerr.ErrInvalidInput }

// RowError is a problem with a single row. Column is empty when the error
// concerns the row as a whole.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// RowErrors collects every failing row of an input.
type RowErrors []*RowError

func (e RowErrors) Error() string {
	msgs := make([]string, len(e))
	for i, re := range e {
		msgs[i] = re.Error()
	}
	return strings.Join(msgs, "\n")
}

func (e RowErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, re := range e {
		errs[i] = re
	}
	return errs
}

type columns struct {
	name, parent, code int
}

// Read parses every row of r into nodes. If any row is invalid, the result
// is nil and the error is RowErrors listing all of them.
func Read(r io.Reader) ([]node.Node, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	var (
		nodes   []node.Node
		rowErrs RowErrors
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		n, errs := parseRow(rec, cols, line)
		if len(errs) > 0 {
			rowErrs = append(rowErrs, errs...)
			continue
		}
		nodes = append(nodes, n)
	}

	if len(rowErrs) > 0 {
		return nil, rowErrs
	}
	return nodes, nil
}

func parseHeader(header []string) (columns, error) {
	cols := columns{name: -1, parent: -1, code: -1}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch strings.ToLower(h) {
		case ColumnName:
			cols.name = i
		case ColumnParent:
			cols.parent = i
		case ColumnCode:
			cols.code = i
		}
	}
	if cols.name < 0 {
		return cols, &MissingColumnError{Column: ColumnName}
	}
	if cols.parent < 0 {
		return cols, &MissingColumnError{Column: ColumnParent}
	}
	return cols, nil
}

func field(rec []string, col int) (string, bool) {
	if col < 0 || col >= len(rec) {
		return "", false
	}
	return rec[col], true
}

func parseRow(rec []string, cols columns, line int) (node.Node, []*RowError) {
	var errs []*RowError
	b := node.NewBuilder()

	if raw, ok := field(rec, cols.name); ok {
		n, err := name.Parse(raw)
		if err != nil {
			errs = append(errs, &RowError{Line: line, Column: ColumnName, Err: err})
		} else {
			b = b.Name(n)
		}
	}
	if raw, ok := field(rec, cols.parent); ok {
		p, err := name.Parse(raw)
		if err != nil {
			errs = append(errs, &RowError{Line: line, Column: ColumnParent, Err: err})
		} else {
			b = b.Parent(p)
		}
	}
	if code, ok := field(rec, cols.code); ok {
		b = b.Code(code)
	}
	if len(errs) > 0 {
		return node.Node{}, errs
	}

	n, err := b.Build()
	if err != nil {
		return node.Node{}, []*RowError{{Line: line, Err: err}}
	}
	return n, nil
}
