package table

import (
	"fmt"
	"strings"
)

// Table is an ordered collection of equal-length columns.
type Table struct {
	columns []*Column
}

// New creates a table from the given columns, re-deriving each column's
// index from its position.
func New(columns ...*Column) *Table {
	t := &Table{columns: append([]*Column(nil), columns...)}
	t.reindex()
	return t
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// NumRows returns the common column length, or 0 for a table with no
// columns. Equal lengths are assumed, not re-validated.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Column returns the column at position i.
func (t *Table) Column(i int) *Column { return t.columns[i] }

// Columns returns the columns in order. The slice is a copy; the columns
// themselves are shared.
func (t *Table) Columns() []*Column {
	return append([]*Column(nil), t.columns...)
}

func (t *Table) reindex() {
	for i, c := range t.columns {
		c.index = i
	}
}

// Append adds a column at the end. No other column shifts, so only the new
// column's index is set.
func (t *Table) Append(c *Column) {
	t.columns = append(t.columns, c)
	c.index = len(t.columns) - 1
}

// Insert adds a column at position i, shifting later columns right and
// re-indexing every column.
func (t *Table) Insert(i int, c *Column) error {
	if i < 0 || i > len(t.columns) {
		return fmt.Errorf("insert position %d out of range [0, %d]", i, len(t.columns))
	}
	t.columns = append(t.columns, nil)
	copy(t.columns[i+1:], t.columns[i:])
	t.columns[i] = c
	t.reindex()
	return nil
}

// Extend appends all given columns and re-indexes.
func (t *Table) Extend(columns ...*Column) {
	t.columns = append(t.columns, columns...)
	t.reindex()
}

// Remove removes the given column (matched by identity) and re-indexes the
// remaining columns.
func (t *Table) Remove(c *Column) error {
	for i, existing := range t.columns {
		if existing == c {
			t.columns = append(t.columns[:i], t.columns[i+1:]...)
			t.reindex()
			return nil
		}
	}
	return fmt.Errorf("column %q is not in this table", c.Name())
}

// Sort is not meaningful on a column-major table without row-level
// semantics and always fails.
func (t *Table) Sort() error {
	return ErrUnsupportedOperation
}

// Reverse is not meaningful on a column-major table without row-level
// semantics and always fails.
func (t *Table) Reverse() error {
	return ErrUnsupportedOperation
}

// String renders the description of every column, one per line.
func (t *Table) String() string {
	descriptions := make([]string, len(t.columns))
	for i, c := range t.columns {
		descriptions[i] = c.String()
	}
	return strings.Join(descriptions, "\n")
}
