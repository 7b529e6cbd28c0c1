package tsv

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/name"
	"github.com/cognicore/ecc/pkg/ontology/node"
)

const simple = "name\tparent\tcode\n" +
	"Neoplasm\t\t\n" +
	"B-cell Lymphoblastic Leukemia\tNeoplasm\tBLL\n" +
	"B-cell Acute Lymphoblastic Leukemia, PAX5 P80R\tB-cell Lymphoblastic Leukemia\tBLLPAX5P80R\n"

func TestReadSimple(t *testing.T) {
	nodes, err := Read(strings.NewReader(simple))
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.True(t, nodes[0].IsRoot())
	_, ok := nodes[0].Code()
	assert.False(t, ok)

	last := nodes[2]
	assert.Equal(t, "B-cell Acute Lymphoblastic Leukemia, PAX5 P80R", last.Name().String())
	assert.Equal(t, "B-cell Lymphoblastic Leukemia", last.Parent().String())
	code, ok := last.Code()
	assert.True(t, ok)
	assert.Equal(t, "BLLPAX5P80R", code)
}

func TestReadColumnOrderAndOptionalCode(t *testing.T) {
	input := "parent\tname\n" +
		"\tNeoplasm\n" +
		"Neoplasm\tLeukemia\n"

	nodes, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Leukemia", nodes[1].Name().String())
	assert.Equal(t, "Neoplasm", nodes[1].Parent().String())
}

func TestReadHeaderTolerance(t *testing.T) {
	input := "\ufeffName\t Parent \tCODE\n" +
		"Neoplasm\t\tN\n"

	nodes, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	code, _ := nodes[0].Code()
	assert.Equal(t, "N", code)
}

func TestReadAggregatesRowErrors(t *testing.T) {
	input := "name\tparent\tcode\n" +
		"Neoplasm\t\t\n" +
		"acute leukemia\tNeoplasm\t\n" +
		"Leukemia\tNeoplasm\t\n" +
		"Lymphoma\tneoplasm\t\n" +
		"Bèar\tNeoplasm\t\n"

	nodes, err := Read(strings.NewReader(input))
	assert.Nil(t, nodes)

	var rowErrs RowErrors
	require.ErrorAs(t, err, &rowErrs)
	require.Len(t, rowErrs, 3)

	assert.Equal(t, 3, rowErrs[0].Line)
	assert.Equal(t, ColumnName, rowErrs[0].Column)
	var cased *name.IncorrectlyCasedWordsError
	require.ErrorAs(t, rowErrs[0], &cased)
	assert.Len(t, cased.Words, 2)

	assert.Equal(t, 5, rowErrs[1].Line)
	assert.Equal(t, ColumnParent, rowErrs[1].Column)

	assert.Equal(t, 6, rowErrs[2].Line)
	var nonASCII *name.NonASCIIWordsError
	assert.ErrorAs(t, rowErrs[2], &nonASCII)

	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
	assert.Contains(t, err.Error(), "line 3: name: some words are incorrectly cased")
}

func TestReadBothFieldsOfOneRow(t *testing.T) {
	input := "name\tparent\n" +
		"leukemia\tneoplasm\n"

	_, err := Read(strings.NewReader(input))
	var rowErrs RowErrors
	require.ErrorAs(t, err, &rowErrs)
	require.Len(t, rowErrs, 2)
	assert.Equal(t, ColumnName, rowErrs[0].Column)
	assert.Equal(t, ColumnParent, rowErrs[1].Column)
}

func TestReadShortRow(t *testing.T) {
	input := "name\tparent\tcode\n" +
		"Neoplasm\n"

	_, err := Read(strings.NewReader(input))
	var rowErrs RowErrors
	require.ErrorAs(t, err, &rowErrs)
	require.Len(t, rowErrs, 1)

	var missing *node.MissingFieldError
	require.ErrorAs(t, rowErrs[0], &missing)
	assert.Equal(t, "parent", missing.Field)
	assert.Equal(t, "line 2: missing required field: parent", rowErrs[0].Error())
}

func TestReadEmptyName(t *testing.T) {
	input := "name\tparent\n" +
		"\tNeoplasm\n"

	_, err := Read(strings.NewReader(input))
	var missing *node.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)
}

func TestReadMissingColumns(t *testing.T) {
	_, err := Read(strings.NewReader("name\tcode\nNeoplasm\tN\n"))
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ColumnParent, missing.Column)

	_, err = Read(strings.NewReader("parent\n\n"))
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ColumnName, missing.Column)
}

func TestReadNoHeader(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadHeaderOnly(t *testing.T) {
	nodes, err := Read(strings.NewReader("name\tparent\tcode\n"))
	require.NoError(t, err)
	assert.Empty(t, nodes)
}
