// Package tabular provides the in-memory model for tab-separated game data
// tables: an ordered sequence of rows sharing an ordered set of unique,
// case-sensitive column names.
package tabular

import (
	"go.uber.org/zap"

	"github.com/d2modkit/d2txt/pkg/errors"
	"github.com/d2modkit/d2txt/pkg/logger"
)

// DedupeMode is the policy applied to duplicate column names when a table
// is constructed.
type DedupeMode int

const (
	// DedupeReject aborts construction on the first duplicate column name.
	DedupeReject DedupeMode = iota
	// DedupeRename renames duplicate columns with a parenthesized base-26
	// suffix derived from the column position, e.g. Name(B), Name(C).
	DedupeRename
)

// Table represents a single tab-separated TXT file: an ordered list of rows
// that all share the table's column set. Column names are case-sensitive
// and unique within a table.
type Table struct {
	columns []string
	index   map[string]int
	rows    []*Row
}

// New creates a table from a header of column names. Duplicate names are
// either renamed or rejected depending on mode; a rejection error carries
// the offending name and its 0-based index.
func New(columns []string, mode DedupeMode) (*Table, error) {
	deduped, err := dedupeColumnNames(columns, mode)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(deduped))
	for i, name := range deduped {
		index[name] = i
	}

	return &Table{columns: deduped, index: index}, nil
}

// ColumnNames returns a copy of the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	copy(names, t.columns)
	return names
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// ColumnIndex returns the 0-based index of a column. Column names are
// case-sensitive.
func (t *Table) ColumnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, errors.Newf(errors.ErrorTypeNotFound, "unknown column %q", name)
	}
	return i, nil
}

// HasColumn reports whether the table has a column with the exact name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the row at the given index. The index must be in range.
func (t *Table) Row(i int) *Row {
	return t.rows[i]
}

// AppendValues appends a row built from positional values. Values are
// assigned left to right; missing trailing cells are left empty and extra
// values are dropped.
func (t *Table) AppendValues(values []string) *Row {
	row := t.newRow(values)
	t.rows = append(t.rows, row)
	return row
}

// AppendMap appends a row built from a column-name to value mapping.
// Unspecified columns are left empty; an unknown key is an error and the
// row is not appended.
func (t *Table) AppendMap(cells map[string]string) (*Row, error) {
	row := t.newRow(nil)
	for name, value := range cells {
		if err := row.Set(name, value); err != nil {
			return nil, err
		}
	}
	t.rows = append(t.rows, row)
	return row, nil
}

// InsertValues inserts a positional row at the given index, shifting later
// rows down.
func (t *Table) InsertValues(i int, values []string) *Row {
	row := t.newRow(values)
	t.rows = append(t.rows, nil)
	copy(t.rows[i+1:], t.rows[i:])
	t.rows[i] = row
	return row
}

// ReplaceValues replaces the row at the given index with a positional row.
func (t *Table) ReplaceValues(i int, values []string) *Row {
	row := t.newRow(values)
	t.rows[i] = row
	return row
}

// DeleteRow removes the row at the given index.
func (t *Table) DeleteRow(i int) {
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
}

func (t *Table) newRow(values []string) *Row {
	cells := make([]string, len(t.columns))
	copy(cells, values)
	return &Row{table: t, cells: cells}
}

// dedupeColumnNames applies the duplicate-name policy to a header.
func dedupeColumnNames(columns []string, mode DedupeMode) ([]string, error) {
	deduped := make([]string, 0, len(columns))
	seen := make(map[string]struct{}, len(columns))

	for i, name := range columns {
		if _, dup := seen[name]; dup {
			if mode == DedupeReject {
				return nil, errors.Newf(errors.ErrorTypeValidation, "duplicate column name %q", name).
					WithDetail("column", name).
					WithDetail("index", i)
			}
			renamed := name + "(" + columnSymbol(i) + ")"
			for {
				if _, taken := seen[renamed]; !taken {
					break
				}
				renamed += "(" + columnSymbol(i) + ")"
			}
			logger.Warn("duplicate column renamed",
				zap.String("column", name),
				zap.String("renamed", renamed),
				zap.Int("index", i))
			name = renamed
		}
		seen[name] = struct{}{}
		deduped = append(deduped, name)
	}

	return deduped, nil
}

// columnSymbol converts a 0-based column index to a spreadsheet-style
// letter symbol (A, B, ..., Z, AA, AB, ...).
func columnSymbol(index int) string {
	symbol := ""
	for index >= 0 {
		modulo := index % 26
		symbol = string(rune('A'+modulo)) + symbol
		index = (index-modulo)/26 - 1
	}
	return symbol
}
