// Package reshape: long→wide conversion.

package reshape

import (
	"fmt"

	"github.com/katalvlaran/tidytab/table"
)

// Wider inverts Longer: rows are grouped by every column other than
// opts.NamesFrom/opts.ValuesFrom, and each distinct NamesFrom value becomes
// one new column (named by its display form) populated from ValuesFrom.
//
// Determinism rules:
//   - groups are emitted in first-appearance row order;
//   - new columns appear after the group columns, in first-appearance order
//     of their key, so Wider(Longer(t)) reproduces t exactly when the id
//     combinations of t are unique;
//   - a (group, key) pair never fed by any row gets the absent marker;
//   - a (group, key) pair fed by two or more rows fails with a wrapped
//     ErrAmbiguousKey — never a silent overwrite. De-duplicate first (for
//     example with Table.Distinct or Table.Aggregate) and retry.
//
// An absent NamesFrom cell names its column "NA". If that (or any key's
// display form) collides with a group column, table construction fails
// with table.ErrDuplicateColumn; the historical workaround of renaming the
// colliding column afterwards is deliberately left to callers.
//
// With no group columns at all the whole table pivots into a single row.
// Complexity: O(N×W).
func Wider(t *table.Table, opts WiderOptions) (*table.Table, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}
	if opts.NamesFrom == "" {
		opts.NamesFrom = DefaultNamesTo
	}
	if opts.ValuesFrom == "" {
		opts.ValuesFrom = DefaultValuesTo
	}
	if opts.NamesFrom == opts.ValuesFrom {
		return nil, ErrSameColumn
	}
	namesCol, err := t.Column(opts.NamesFrom)
	if err != nil {
		return nil, fmt.Errorf("wider: %w", err)
	}
	valuesCol, err := t.Column(opts.ValuesFrom)
	if err != nil {
		return nil, fmt.Errorf("wider: %w", err)
	}

	// Group columns: everything else, original order preserved.
	var groupNames []string
	for _, name := range t.Columns() {
		if name != opts.NamesFrom && name != opts.ValuesFrom {
			groupNames = append(groupNames, name)
		}
	}
	groups, err := t.Select(groupNames...)
	if err != nil {
		return nil, fmt.Errorf("wider: %w", err)
	}

	// First pass: assign rows to groups and keys in first-appearance order.
	type cellRef struct {
		group, key int
	}
	groupIdx := make(map[string]int)
	groupRows := make([]int, 0)
	keyIdx := make(map[string]int)
	keyNames := make([]string, 0)
	refs := make([]cellRef, t.Len())
	nameCells := namesCol.Values()
	for r := 0; r < t.Len(); r++ {
		// With no group columns every row belongs to the one implicit group.
		gk := ""
		if len(groupNames) > 0 {
			row, rerr := groups.Row(r)
			if rerr != nil {
				return nil, fmt.Errorf("wider: %w", rerr)
			}
			gk = table.EncodeKey(row...)
		}
		g, ok := groupIdx[gk]
		if !ok {
			g = len(groupRows)
			groupIdx[gk] = g
			groupRows = append(groupRows, r)
		}
		name := nameCells[r].String()
		k, ok := keyIdx[name]
		if !ok {
			k = len(keyNames)
			keyIdx[name] = k
			keyNames = append(keyNames, name)
		}
		refs[r] = cellRef{group: g, key: k}
	}

	// Second pass: place values, refusing ambiguous cells.
	valueCells := valuesCol.Values()
	grid := make([][]table.Value, len(keyNames))
	filled := make([][]bool, len(keyNames))
	for k := range grid {
		grid[k] = make([]table.Value, len(groupRows))
		filled[k] = make([]bool, len(groupRows))
		for g := range grid[k] {
			grid[k][g] = table.Absent()
		}
	}
	for r, ref := range refs {
		if filled[ref.key][ref.group] {
			return nil, fmt.Errorf("wider: key %q fed twice for one group (row %d): %w",
				keyNames[ref.key], r, ErrAmbiguousKey)
		}
		filled[ref.key][ref.group] = true
		grid[ref.key][ref.group] = valueCells[r]
	}

	// Assemble: group columns at their first-appearance rows, then one
	// column per key, all carrying the value column's kind.
	outCols := make([]*table.Column, 0, len(groupNames)+len(keyNames))
	for _, name := range groupNames {
		src, _ := groups.Column(name)
		cells := make([]table.Value, len(groupRows))
		in := src.Values()
		for g, r := range groupRows {
			cells[g] = in[r]
		}
		c, cerr := table.NewColumn(name, src.Kind(), cells...)
		if cerr != nil {
			return nil, fmt.Errorf("wider: %w", cerr)
		}
		outCols = append(outCols, c)
	}
	for k, name := range keyNames {
		c, cerr := table.NewColumn(name, valuesCol.Kind(), grid[k]...)
		if cerr != nil {
			return nil, fmt.Errorf("wider: %w", cerr)
		}
		outCols = append(outCols, c)
	}

	out, err := table.New(outCols...)
	if err != nil {
		return nil, fmt.Errorf("wider: %w", err)
	}

	return out, nil
}
