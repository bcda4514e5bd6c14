// SPDX-License-Identifier: MIT

// Package table: row and column verbs. Every verb returns a new Table and
// leaves its receiver untouched; derived tables share immutable columns
// where the verb permits it.

package table

import (
	"fmt"
	"sort"
)

// Select returns a table holding exactly the named columns, in the order
// given. Returns ErrColumnNotFound on the first unknown name and
// ErrDuplicateColumn if a name is listed twice.
// Complexity: O(selected).
func (t *Table) Select(names ...string) (*Table, error) {
	idx, err := t.indices(names)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(idx))
	cols := make([]*Column, len(idx))
	for i, p := range idx {
		if seen[p] {
			return nil, fmt.Errorf("column %q: %w", t.cols[p].name, ErrDuplicateColumn)
		}
		seen[p] = true
		cols[i] = t.cols[p]
	}

	return newUnchecked(cols), nil
}

// Drop returns a table without the named columns, preserving the order of
// the remaining ones. Every name must exist. Dropping every column yields
// the valid zero-column table.
func (t *Table) Drop(names ...string) (*Table, error) {
	idx, err := t.indices(names)
	if err != nil {
		return nil, err
	}
	gone := make(map[int]bool, len(idx))
	for _, p := range idx {
		gone[p] = true
	}
	cols := make([]*Column, 0, len(t.cols)-len(gone))
	for i, c := range t.cols {
		if !gone[i] {
			cols = append(cols, c)
		}
	}

	return newUnchecked(cols), nil
}

// Rename returns a table with column old renamed to new, position and cells
// unchanged. Renaming a column to its own name is a no-op copy.
// Returns ErrColumnNotFound, ErrEmptyName or ErrDuplicateColumn.
func (t *Table) Rename(old, new string) (*Table, error) {
	p, ok := t.pos[old]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", old, ErrColumnNotFound)
	}
	if new == "" {
		return nil, ErrEmptyName
	}
	if _, taken := t.pos[new]; taken && new != old {
		return nil, fmt.Errorf("column %q: %w", new, ErrDuplicateColumn)
	}
	cols := make([]*Column, len(t.cols))
	copy(cols, t.cols)
	cols[p] = cols[p].renamed(new)

	return newUnchecked(cols), nil
}

// Head returns the first n rows (all rows when n exceeds Len).
// Returns ErrRowRange for negative n.
func (t *Table) Head(n int) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("head %d: %w", n, ErrRowRange)
	}
	if n > t.Len() {
		n = t.Len()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}

	return t.takeRows(rows), nil
}

// Take returns a table holding the given rows of t, in the order listed.
// Indices may repeat (rows replicate) and every index must lie in
// [0, Len); otherwise a wrapped ErrRowRange is returned.
// Complexity: O(len(rows)×W).
func (t *Table) Take(rows []int) (*Table, error) {
	for _, r := range rows {
		if r < 0 || r >= t.Len() {
			return nil, fmt.Errorf("take row %d of %d: %w", r, t.Len(), ErrRowRange)
		}
	}
	cp := make([]int, len(rows))
	copy(cp, rows)

	return t.takeRows(cp), nil
}

// Filter returns the rows whose cell in the named column satisfies keep,
// preserving row order. The predicate sees the absent marker too, so callers
// decide whether missing data passes.
// Complexity: O(N).
func (t *Table) Filter(name string, keep func(Value) bool) (*Table, error) {
	if keep == nil {
		return nil, ErrNilPredicate
	}
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	rows := make([]int, 0, len(c.cells))
	for i, v := range c.cells {
		if keep(v) {
			rows = append(rows, i)
		}
	}

	return t.takeRows(rows), nil
}

// Sort returns the rows ordered ascending by the named columns, comparing
// by the first column and breaking ties with the following ones. The sort
// is stable and the absent marker orders after every present value.
// An empty column list returns the table unchanged.
// Complexity: O(N log N × keys).
func (t *Table) Sort(by ...string) (*Table, error) {
	idx, err := t.indices(by)
	if err != nil {
		return nil, err
	}
	rows := make([]int, t.Len())
	for i := range rows {
		rows[i] = i
	}
	sort.SliceStable(rows, func(a, b int) bool {
		ra, rb := rows[a], rows[b]
		for _, ci := range idx {
			va, vb := t.cols[ci].cells[ra], t.cols[ci].cells[rb]
			switch {
			case va.absent && vb.absent:
				continue
			case va.absent:
				return false // absent sorts last
			case vb.absent:
				return true
			case va.Equal(vb):
				continue
			default:
				return va.less(vb)
			}
		}
		return false
	})

	return t.takeRows(rows), nil
}

// Distinct returns the table with exact duplicate rows removed, keeping the
// first occurrence of each tuple in row order.
// Complexity: O(N×W).
func (t *Table) Distinct() *Table {
	all := make([]int, len(t.cols))
	for i := range all {
		all[i] = i
	}
	seen := make(map[string]bool, t.Len())
	rows := make([]int, 0, t.Len())
	for r := 0; r < t.Len(); r++ {
		k := t.rowKey(r, all)
		if seen[k] {
			continue
		}
		seen[k] = true
		rows = append(rows, r)
	}

	return t.takeRows(rows)
}

// Concat appends the rows of u under t's columns. The two tables must carry
// the same column name set with the same kind per name; column order may
// differ and the result uses t's order. Returns ErrSchemaMismatch otherwise.
// Complexity: O((N_t+N_u)×W).
func (t *Table) Concat(u *Table) (*Table, error) {
	if u == nil {
		return nil, ErrNilTable
	}
	if err := SameSchema(t, u); err != nil {
		return nil, err
	}
	cols := make([]*Column, len(t.cols))
	for i, c := range t.cols {
		uc := u.cols[u.pos[c.name]]
		cells := make([]Value, 0, len(c.cells)+len(uc.cells))
		cells = append(cells, c.cells...)
		cells = append(cells, uc.cells...)
		cols[i] = &Column{name: c.name, kind: c.kind, cells: cells}
	}

	return newUnchecked(cols), nil
}

// SameSchema verifies that two tables share one column name set with
// matching kinds, ignoring column order. Returns nil when they do and a
// wrapped ErrSchemaMismatch naming the first offending column otherwise.
func SameSchema(a, b *Table) error {
	if a == nil || b == nil {
		return ErrNilTable
	}
	if len(a.cols) != len(b.cols) {
		return fmt.Errorf("%d vs %d columns: %w", len(a.cols), len(b.cols), ErrSchemaMismatch)
	}
	for _, c := range a.cols {
		p, ok := b.pos[c.name]
		if !ok {
			return fmt.Errorf("column %q missing from one side: %w", c.name, ErrSchemaMismatch)
		}
		if b.cols[p].kind != c.kind {
			return fmt.Errorf("column %q is %s vs %s: %w", c.name, c.kind, b.cols[p].kind, ErrSchemaMismatch)
		}
	}
	return nil
}
