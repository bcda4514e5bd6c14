// SPDX-License-Identifier: MIT

// Package table implements the ordered, validated column registry at the
// heart of the module. A Table is an ordered sequence of uniquely named
// columns sharing one row count; construction validates the registry and
// every transformation produces a new Table, so inputs are never mutated.
package table

import "fmt"

// Table is an ordered collection of named columns with a shared row count.
// Row order is preserved by every operation but carries meaning only for
// display; joins and set operations treat rows as tuples.
// The zero-column Table is valid and has zero rows.
type Table struct {
	cols []*Column
	pos  map[string]int
}

// New constructs a Table from the given columns, validating the registry:
// non-empty unique names and one shared length. The column slice is copied;
// the columns themselves are immutable and shared.
// Returns ErrEmptyName, ErrDuplicateColumn or ErrLengthMismatch.
// Complexity: O(columns).
func New(cols ...*Column) (*Table, error) {
	t := &Table{
		cols: make([]*Column, 0, len(cols)),
		pos:  make(map[string]int, len(cols)),
	}
	n := -1
	for _, c := range cols {
		if c.name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := t.pos[c.name]; dup {
			return nil, fmt.Errorf("column %q: %w", c.name, ErrDuplicateColumn)
		}
		if n >= 0 && c.Len() != n {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", c.name, c.Len(), n, ErrLengthMismatch)
		}
		n = c.Len()
		t.pos[c.name] = len(t.cols)
		t.cols = append(t.cols, c)
	}

	return t, nil
}

// newUnchecked assembles a table from columns already known to satisfy the
// registry invariants. Internal fast path for derived tables.
func newUnchecked(cols []*Column) *Table {
	t := &Table{cols: cols, pos: make(map[string]int, len(cols))}
	for i, c := range cols {
		t.pos[c.name] = i
	}
	return t
}

// Len returns the row count N. A zero-column table has zero rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.pos[name]
	return ok
}

// Column returns the named column, or ErrColumnNotFound.
// The returned column is immutable and safe to retain.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.pos[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrColumnNotFound)
	}
	return t.cols[i], nil
}

// ColumnAt returns the column at position i in table order.
func (t *Table) ColumnAt(i int) (*Column, error) {
	if i < 0 || i >= len(t.cols) {
		return nil, fmt.Errorf("column index %d: %w", i, ErrColumnNotFound)
	}
	return t.cols[i], nil
}

// At returns the cell at (row, column name).
func (t *Table) At(row int, name string) (Value, error) {
	c, err := t.Column(name)
	if err != nil {
		return Value{}, err
	}
	return c.Cell(row)
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) ([]Value, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("row %d of %d: %w", i, t.Len(), ErrRowRange)
	}
	vals := make([]Value, len(t.cols))
	for j, c := range t.cols {
		vals[j] = c.cells[i]
	}
	return vals, nil
}

// Clone returns a deep copy of the table, cells included. Derived tables
// normally share immutable columns; Clone is for callers that want a fully
// independent value regardless.
// Complexity: O(N×W).
func (t *Table) Clone() *Table {
	cols := make([]*Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.clone()
	}
	return newUnchecked(cols)
}

// indices resolves names to column positions, failing on the first unknown.
func (t *Table) indices(names []string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		p, ok := t.pos[name]
		if !ok {
			return nil, fmt.Errorf("column %q: %w", name, ErrColumnNotFound)
		}
		idx[i] = p
	}
	return idx, nil
}

// takeRows builds a new table holding the given rows of t, in order.
// Callers guarantee the indices are in range.
func (t *Table) takeRows(rows []int) *Table {
	cols := make([]*Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.gather(rows)
	}
	return newUnchecked(cols)
}

// rowKey encodes the tuple of the given column positions at row r.
func (t *Table) rowKey(r int, colIdx []int) string {
	vals := make([]Value, len(colIdx))
	for j, ci := range colIdx {
		vals[j] = t.cols[ci].cells[r]
	}
	return EncodeKey(vals...)
}
