// Package setops treats tables as sets of rows: intersection, union,
// difference and set equality. Two tables are comparable only when they
// carry the same column names with the same kinds; column order is
// irrelevant and the second table is aligned to the first before any rows
// are compared. Every result is deduplicated and laid out in the first
// table's column order.
//
// Row identity is the injective tuple encoding of all cells, so Int(3)
// and Number(3) rows stay distinct, and the absent marker only matches
// itself.
package setops

import (
	"fmt"

	"github.com/katalvlaran/tidytab/table"
)

// Intersect returns the distinct rows present in both a and b, in a's
// first-occurrence row order and column order.
// Returns a wrapped table.ErrSchemaMismatch when the schemas differ.
// Complexity: O((N_a+N_b)×W).
func Intersect(a, b *table.Table) (*table.Table, error) {
	bb, err := align(a, b)
	if err != nil {
		return nil, err
	}
	inB := member(rowKeys(bb))
	var rows []int
	seen := make(map[string]bool)
	for r, k := range rowKeys(a) {
		if inB[k] && !seen[k] {
			seen[k] = true
			rows = append(rows, r)
		}
	}

	return a.Take(rows)
}

// Union returns the distinct rows of a followed by the distinct rows of b
// not already emitted, in a's column order.
// Returns a wrapped table.ErrSchemaMismatch when the schemas differ.
// Complexity: O((N_a+N_b)×W).
func Union(a, b *table.Table) (*table.Table, error) {
	bb, err := align(a, b)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var aRows, bRows []int
	for r, k := range rowKeys(a) {
		if !seen[k] {
			seen[k] = true
			aRows = append(aRows, r)
		}
	}
	for r, k := range rowKeys(bb) {
		if !seen[k] {
			seen[k] = true
			bRows = append(bRows, r)
		}
	}

	head, err := a.Take(aRows)
	if err != nil {
		return nil, err
	}
	tail, err := bb.Take(bRows)
	if err != nil {
		return nil, err
	}

	return head.Concat(tail)
}

// Difference returns the distinct rows of a that do not appear in b, in
// a's first-occurrence row order. The operation is asymmetric: rows only
// in b never show up.
// Returns a wrapped table.ErrSchemaMismatch when the schemas differ.
// Complexity: O((N_a+N_b)×W).
func Difference(a, b *table.Table) (*table.Table, error) {
	bb, err := align(a, b)
	if err != nil {
		return nil, err
	}
	inB := member(rowKeys(bb))
	var rows []int
	seen := make(map[string]bool)
	for r, k := range rowKeys(a) {
		if !inB[k] && !seen[k] {
			seen[k] = true
			rows = append(rows, r)
		}
	}

	return a.Take(rows)
}

// Equal reports whether a and b hold the same set of rows, ignoring row
// order, column order and duplicates.
// Returns a wrapped table.ErrSchemaMismatch when the schemas differ, so a
// false answer always means "same shape, different rows".
// Complexity: O((N_a+N_b)×W).
func Equal(a, b *table.Table) (bool, error) {
	bb, err := align(a, b)
	if err != nil {
		return false, err
	}
	inA := member(rowKeys(a))
	inB := member(rowKeys(bb))
	if len(inA) != len(inB) {
		return false, nil
	}
	for k := range inA {
		if !inB[k] {
			return false, nil
		}
	}

	return true, nil
}

// align verifies the schemas and reorders b's columns to a's layout.
func align(a, b *table.Table) (*table.Table, error) {
	if err := table.SameSchema(a, b); err != nil {
		return nil, fmt.Errorf("setops: %w", err)
	}
	bb, err := b.Select(a.Columns()...)
	if err != nil {
		return nil, fmt.Errorf("setops: %w", err)
	}

	return bb, nil
}

// rowKeys encodes every full row of t into its identity string.
func rowKeys(t *table.Table) []string {
	cols := make([][]table.Value, t.Width())
	for i := range cols {
		c, _ := t.ColumnAt(i)
		cols[i] = c.Values()
	}
	keys := make([]string, t.Len())
	tuple := make([]table.Value, len(cols))
	for r := range keys {
		for i := range cols {
			tuple[i] = cols[i][r]
		}
		keys[r] = table.EncodeKey(tuple...)
	}

	return keys
}

// member collapses a key slice into a membership set.
func member(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
