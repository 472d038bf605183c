package qqman_api

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The canonical column names used by the plots
const (
	ColumnChr  = "chr"
	ColumnBp   = "bp"
	ColumnP    = "p"
	ColumnRsid = "rsid"
)

var (
	ErrMissingColumn   = errors.New("required column is missing")
	ErrDuplicateColumn = errors.New("column already exists")
)

// Lowercase a column name so columns can be matched case insensitively
func normalizeName(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// Lowercase all header fields of the table
func (table *Table) normalizeHeader() {
	for i, name := range table.Header {
		table.Header[i] = normalizeName(strings.TrimPrefix(name, "\ufeff"))
	}
}

// The index of the column with the given (case insensitive) name, -1 if absent
func (table *Table) Index(name string) int {
	name = normalizeName(name)
	for i, column := range table.Header {
		if column == name {
			return i
		}
	}
	return -1
}

// Rename the column 'from' to 'to'. Renaming a column that isn't present is a no-op.
func (table *Table) Rename(from string, to string) error {
	from = normalizeName(from)
	to = normalizeName(to)
	if from == to {
		return nil
	}

	index := table.Index(from)
	if index < 0 {
		return nil
	}
	if table.Index(to) >= 0 {
		return fmt.Errorf("%w: cannot rename '%s' to '%s'", ErrDuplicateColumn, from, to)
	}
	table.Header[index] = to
	return nil
}

// Check that all given columns are present
func (table *Table) Require(names ...string) error {
	missing := []string{}
	for _, name := range names {
		if table.Index(name) < 0 {
			missing = append(missing, normalizeName(name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (available columns: %s)", ErrMissingColumn, strings.Join(missing, ", "), strings.Join(table.Header, ", "))
	}
	return nil
}

// The values of the given column in row order
func (table *Table) Column(name string) ([]string, error) {
	if err := table.Require(name); err != nil {
		return nil, err
	}
	index := table.Index(name)
	values := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		values[i] = row[index]
	}
	return values, nil
}
