// SPDX-License-Identifier: MIT

package table

import "fmt"

// Column is a named, kinded sequence of cells. Every cell is either the
// absent marker or a present Value of the column's kind; this invariant is
// validated at construction and preserved by every table operation.
// Columns are immutable once built and may therefore be structurally shared
// between derived tables.
type Column struct {
	name  string
	kind  Kind
	cells []Value
}

// NewColumn builds a column from explicit cells, copying the slice.
// Returns ErrEmptyName for an empty name, ErrUnknownKind for an undeclared
// kind, and ErrTypeMismatch if any present cell is not of the given kind.
// Complexity: O(n).
func NewColumn(name string, kind Kind, cells ...Value) (*Column, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !kind.valid() {
		return nil, ErrUnknownKind
	}
	cp := make([]Value, len(cells))
	for i, c := range cells {
		if !c.absent && c.kind != kind {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, ErrTypeMismatch)
		}
		cp[i] = c
	}

	return &Column{name: name, kind: kind, cells: cp}, nil
}

// Strings builds a KindString column with all cells present.
// The name is validated when the column joins a table.
func Strings(name string, vals ...string) *Column {
	cells := make([]Value, len(vals))
	for i, s := range vals {
		cells[i] = String(s)
	}
	return &Column{name: name, kind: KindString, cells: cells}
}

// Numbers builds a KindNumber column with all cells present.
func Numbers(name string, vals ...float64) *Column {
	cells := make([]Value, len(vals))
	for i, f := range vals {
		cells[i] = Number(f)
	}
	return &Column{name: name, kind: KindNumber, cells: cells}
}

// Ints builds a KindInt column with all cells present.
func Ints(name string, vals ...int64) *Column {
	cells := make([]Value, len(vals))
	for i, n := range vals {
		cells[i] = Int(n)
	}
	return &Column{name: name, kind: KindInt, cells: cells}
}

// Bools builds a KindBool column with all cells present.
func Bools(name string, vals ...bool) *Column {
	cells := make([]Value, len(vals))
	for i, b := range vals {
		cells[i] = Bool(b)
	}
	return &Column{name: name, kind: KindBool, cells: cells}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.cells) }

// Cell returns the value at row i, or ErrRowRange when i is outside [0, Len).
func (c *Column) Cell(i int) (Value, error) {
	if i < 0 || i >= len(c.cells) {
		return Value{}, fmt.Errorf("column %q row %d: %w", c.name, i, ErrRowRange)
	}
	return c.cells[i], nil
}

// Values returns a copy of all cells in row order.
func (c *Column) Values() []Value {
	cp := make([]Value, len(c.cells))
	copy(cp, c.cells)
	return cp
}

// clone deep-copies the column, cells included.
func (c *Column) clone() *Column {
	cp := make([]Value, len(c.cells))
	copy(cp, c.cells)
	return &Column{name: c.name, kind: c.kind, cells: cp}
}

// renamed returns a copy of the column under a new name, sharing cells.
func (c *Column) renamed(name string) *Column {
	return &Column{name: name, kind: c.kind, cells: c.cells}
}

// gather returns a new column holding the cells at the given row indices,
// in the given order. Callers guarantee the indices are in range.
func (c *Column) gather(rows []int) *Column {
	cells := make([]Value, len(rows))
	for j, r := range rows {
		cells[j] = c.cells[r]
	}
	return &Column{name: c.name, kind: c.kind, cells: cells}
}
