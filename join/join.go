// Package join combines two tables on a shared key with inner, left,
// right, full, semi and anti semantics. Joins are stateless pure
// functions: both inputs stay untouched and a new table is returned.
//
// Matching is hash-based: the non-driving side is indexed by the injective
// tuple encoding of its key cells, then the driving side probes in row
// order, which keeps the output deterministic. Duplicate keys expand to
// the cartesian product of the matching rows — they replicate, never
// collapse. Unmatched cells are filled with the absent marker, never by
// dropping a column.
package join

import (
	"fmt"

	"github.com/katalvlaran/tidytab/table"
)

// Join matches the rows of a against the rows of b per opts.Mode.
//
// The key is opts.On, or every shared column name (in a's order) when On
// is empty. Key columns must exist on both sides with equal kinds; they
// appear once in the result, under a's names and positions.
//
// Column layout for inner/left/right/full: all of a's columns, then b's
// non-key columns; a right-side name already taken on the left gets
// opts.Suffix appended. Semi and anti return a's columns only.
//
// Row order: inner, left and full emit one block per a-row, top to bottom,
// matches ordered as in b; full appends b's unmatched rows afterwards in
// b's order; right emits one block per b-row in b's order. For unmatched
// driving rows the key cells come from the driving side.
//
// Returns table.ErrNilTable, ErrUnknownMode, ErrNoSharedKey, ErrKeyKind,
// a wrapped table.ErrColumnNotFound naming the side missing a key, and a
// wrapped table.ErrDuplicateColumn when suffixing still collides.
// Complexity: O(N_a + N_b + output).
func Join(a, b *table.Table, opts Options) (*table.Table, error) {
	if a == nil || b == nil {
		return nil, table.ErrNilTable
	}
	if !opts.Mode.valid() {
		return nil, ErrUnknownMode
	}
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}

	// 1) Resolve and validate the key.
	keys, err := resolveKeys(a, b, opts.On)
	if err != nil {
		return nil, err
	}

	// 2) Semi and anti reduce to a membership probe over a's rows.
	if opts.Mode == SemiJoin || opts.Mode == AntiJoin {
		return semiAnti(a, b, keys, opts.Mode == AntiJoin)
	}

	// 3) Pair up row indices per mode; -1 marks "no row on that side".
	leftIdx, rightIdx, err := matchRows(a, b, keys, opts.Mode)
	if err != nil {
		return nil, err
	}

	// 4) Assemble the output columns from the index pairs.
	return assemble(a, b, keys, opts.Suffix, leftIdx, rightIdx)
}

// resolveKeys returns the key column names: opts.On verbatim, or the
// shared names in a's order for a natural join. Existence and kind
// equality are checked on both sides.
func resolveKeys(a, b *table.Table, on []string) ([]string, error) {
	keys := on
	if len(keys) == 0 {
		for _, name := range a.Columns() {
			if b.Has(name) {
				keys = append(keys, name)
			}
		}
		if len(keys) == 0 {
			return nil, ErrNoSharedKey
		}
	}
	for _, name := range keys {
		ac, err := a.Column(name)
		if err != nil {
			return nil, fmt.Errorf("join: left table: %w", err)
		}
		bc, err := b.Column(name)
		if err != nil {
			return nil, fmt.Errorf("join: right table: %w", err)
		}
		if ac.Kind() != bc.Kind() {
			return nil, fmt.Errorf("key %q is %s vs %s: %w", name, ac.Kind(), bc.Kind(), ErrKeyKind)
		}
	}

	return keys, nil
}

// keyStrings precomputes the tuple encoding of every row's key cells.
func keyStrings(t *table.Table, keys []string) ([]string, error) {
	cols := make([][]table.Value, len(keys))
	for i, name := range keys {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c.Values()
	}
	out := make([]string, t.Len())
	tuple := make([]table.Value, len(keys))
	for r := 0; r < t.Len(); r++ {
		for i := range cols {
			tuple[i] = cols[i][r]
		}
		out[r] = table.EncodeKey(tuple...)
	}
	return out, nil
}

// semiAnti keeps a's rows by membership of their key in b.
func semiAnti(a, b *table.Table, keys []string, invert bool) (*table.Table, error) {
	bKeys, err := keyStrings(b, keys)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(bKeys))
	for _, k := range bKeys {
		present[k] = true
	}
	aKeys, err := keyStrings(a, keys)
	if err != nil {
		return nil, err
	}
	rows := make([]int, 0, len(aKeys))
	for r, k := range aKeys {
		if present[k] != invert {
			rows = append(rows, r)
		}
	}

	return a.Take(rows)
}

// matchRows builds the parallel row-index slices for inner/left/right/full.
func matchRows(a, b *table.Table, keys []string, mode Mode) (leftIdx, rightIdx []int, err error) {
	aKeys, err := keyStrings(a, keys)
	if err != nil {
		return nil, nil, err
	}
	bKeys, err := keyStrings(b, keys)
	if err != nil {
		return nil, nil, err
	}

	if mode == RightJoin {
		// Index a, drive over b. The pair layout stays (left, right).
		index := buildIndex(aKeys)
		for br, k := range bKeys {
			if rows, ok := index[k]; ok {
				for _, ar := range rows {
					leftIdx = append(leftIdx, ar)
					rightIdx = append(rightIdx, br)
				}
				continue
			}
			leftIdx = append(leftIdx, -1)
			rightIdx = append(rightIdx, br)
		}
		return leftIdx, rightIdx, nil
	}

	// Inner, left and full all drive over a with b indexed.
	index := buildIndex(bKeys)
	bMatched := make([]bool, len(bKeys))
	for ar, k := range aKeys {
		rows, ok := index[k]
		if ok {
			for _, br := range rows {
				leftIdx = append(leftIdx, ar)
				rightIdx = append(rightIdx, br)
				bMatched[br] = true
			}
			continue
		}
		if mode == LeftJoin || mode == FullJoin {
			leftIdx = append(leftIdx, ar)
			rightIdx = append(rightIdx, -1)
		}
	}
	if mode == FullJoin {
		for br, hit := range bMatched {
			if !hit {
				leftIdx = append(leftIdx, -1)
				rightIdx = append(rightIdx, br)
			}
		}
	}

	return leftIdx, rightIdx, nil
}

// buildIndex maps each key encoding to the rows carrying it, in row order.
func buildIndex(keys []string) map[string][]int {
	index := make(map[string][]int, len(keys))
	for r, k := range keys {
		index[k] = append(index[k], r)
	}
	return index
}

// assemble gathers the output cells. Key columns sit under a's names and
// take the driving side's value when the other side is unmatched; b's
// remaining columns follow, suffixed on collision.
func assemble(a, b *table.Table, keys []string, suffix string, leftIdx, rightIdx []int) (*table.Table, error) {
	keySet := make(map[string]bool, len(keys))
	for _, name := range keys {
		keySet[name] = true
	}

	outCols := make([]*table.Column, 0, a.Width()+b.Width()-len(keys))
	for _, name := range a.Columns() {
		ac, _ := a.Column(name)
		cells := make([]table.Value, len(leftIdx))
		aCells := ac.Values()
		var bCells []table.Value
		if keySet[name] {
			bc, _ := b.Column(name)
			bCells = bc.Values()
		}
		for i := range cells {
			switch {
			case leftIdx[i] >= 0:
				cells[i] = aCells[leftIdx[i]]
			case bCells != nil:
				// Unmatched right-driven row: the key must still be visible.
				cells[i] = bCells[rightIdx[i]]
			default:
				cells[i] = table.Absent()
			}
		}
		c, err := table.NewColumn(name, ac.Kind(), cells...)
		if err != nil {
			return nil, fmt.Errorf("join: %w", err)
		}
		outCols = append(outCols, c)
	}

	for _, name := range b.Columns() {
		if keySet[name] {
			continue
		}
		bc, _ := b.Column(name)
		outName := name
		if a.Has(name) {
			outName = name + suffix
		}
		bCells := bc.Values()
		cells := make([]table.Value, len(rightIdx))
		for i := range cells {
			if rightIdx[i] >= 0 {
				cells[i] = bCells[rightIdx[i]]
			} else {
				cells[i] = table.Absent()
			}
		}
		c, err := table.NewColumn(outName, bc.Kind(), cells...)
		if err != nil {
			return nil, fmt.Errorf("join: %w", err)
		}
		outCols = append(outCols, c)
	}

	out, err := table.New(outCols...)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}

	return out, nil
}
