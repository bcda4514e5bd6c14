// SPDX-License-Identifier: MIT

package table

import "fmt"

// AggFn selects the summary computed by Aggregate over each group.
type AggFn int

const (
	// AggCount counts the rows of the group; its source column is ignored.
	AggCount AggFn = iota
	// AggSum adds the present numeric cells of the group.
	AggSum
	// AggMean averages the present numeric cells of the group.
	AggMean
	// AggMin takes the smallest present numeric cell of the group.
	AggMin
	// AggMax takes the largest present numeric cell of the group.
	AggMax
	// AggFirst takes the group's first cell of any kind, absent included.
	AggFirst
)

// Agg names one summary column: Fn applied to Column, emitted under As.
// An empty As defaults to "n" for AggCount and "fn_column" otherwise.
type Agg struct {
	Column string
	Fn     AggFn
	As     string
}

// name resolves the output column name.
func (a Agg) name() string {
	if a.As != "" {
		return a.As
	}
	if a.Fn == AggCount {
		return "n"
	}
	return a.fnName() + "_" + a.Column
}

func (a Agg) fnName() string {
	switch a.Fn {
	case AggSum:
		return "sum"
	case AggMean:
		return "mean"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	case AggFirst:
		return "first"
	default:
		return "count"
	}
}

// Aggregate groups rows by the tuple of the groupBy columns and emits one
// row per group: the group's key values followed by one column per Agg.
// Groups appear in first-seen row order. Absent cells are skipped by
// Sum/Mean/Min/Max; a group with no present cell yields the absent marker.
// Sum keeps the source kind, Mean is always KindNumber, Min/Max keep the
// source kind, Count is KindInt, First keeps kind.
//
// Sum/Mean/Min/Max require a KindInt or KindNumber source column and fail
// with a wrapped ErrTypeMismatch otherwise. An empty groupBy aggregates the
// whole table into a single row.
// Complexity: O(N×(keys+aggs)).
func (t *Table) Aggregate(groupBy []string, aggs ...Agg) (*Table, error) {
	keyIdx, err := t.indices(groupBy)
	if err != nil {
		return nil, err
	}
	srcIdx := make([]int, len(aggs))
	for i, a := range aggs {
		if a.Fn < AggCount || a.Fn > AggFirst {
			return nil, ErrUnknownAggregate
		}
		if a.Fn == AggCount {
			srcIdx[i] = -1
			continue
		}
		p, ok := t.pos[a.Column]
		if !ok {
			return nil, fmt.Errorf("column %q: %w", a.Column, ErrColumnNotFound)
		}
		k := t.cols[p].kind
		if a.Fn != AggFirst && k != KindInt && k != KindNumber {
			return nil, fmt.Errorf("aggregate %s over %s column %q: %w", a.fnName(), k, a.Column, ErrTypeMismatch)
		}
		srcIdx[i] = p
	}

	// One pass: assign every row to its group in first-seen order.
	groupOf := make([]int, t.Len())
	firstRow := make([]int, 0)
	byKey := make(map[string]int, t.Len())
	for r := 0; r < t.Len(); r++ {
		k := t.rowKey(r, keyIdx)
		g, ok := byKey[k]
		if !ok {
			g = len(firstRow)
			byKey[k] = g
			firstRow = append(firstRow, r)
		}
		groupOf[r] = g
	}

	cols := make([]*Column, 0, len(keyIdx)+len(aggs))
	for _, ci := range keyIdx {
		cols = append(cols, t.cols[ci].gather(firstRow))
	}
	for i, a := range aggs {
		c, err := t.aggregateColumn(a, srcIdx[i], groupOf, len(firstRow))
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}

	out, err := New(cols...)
	if err != nil {
		return nil, err // duplicate output names surface here
	}

	return out, nil
}

// aggregateColumn computes one summary column over the assigned groups.
func (t *Table) aggregateColumn(a Agg, src int, groupOf []int, groups int) (*Column, error) {
	switch a.Fn {
	case AggCount:
		counts := make([]int64, groups)
		for _, g := range groupOf {
			counts[g]++
		}
		return Ints(a.name(), counts...), nil

	case AggFirst:
		c := t.cols[src]
		cells := make([]Value, groups)
		taken := make([]bool, groups)
		for r, g := range groupOf {
			if !taken[g] {
				taken[g] = true
				cells[g] = c.cells[r]
			}
		}
		return &Column{name: a.name(), kind: c.kind, cells: cells}, nil
	}

	// Numeric reductions share one accumulation pass over float64.
	c := t.cols[src]
	sums := make([]float64, groups)
	mins := make([]float64, groups)
	maxs := make([]float64, groups)
	counts := make([]int64, groups)
	for r, g := range groupOf {
		v := c.cells[r]
		if v.absent {
			continue
		}
		f := v.f
		if c.kind == KindInt {
			f = float64(v.i)
		}
		if counts[g] == 0 {
			mins[g], maxs[g] = f, f
		} else {
			if f < mins[g] {
				mins[g] = f
			}
			if f > maxs[g] {
				maxs[g] = f
			}
		}
		sums[g] += f
		counts[g]++
	}

	cells := make([]Value, groups)
	outKind := KindNumber
	if (a.Fn == AggSum || a.Fn == AggMin || a.Fn == AggMax) && c.kind == KindInt {
		outKind = KindInt
	}
	for g := 0; g < groups; g++ {
		if counts[g] == 0 {
			cells[g] = Absent()
			continue
		}
		var f float64
		switch a.Fn {
		case AggSum:
			f = sums[g]
		case AggMean:
			f = sums[g] / float64(counts[g])
		case AggMin:
			f = mins[g]
		case AggMax:
			f = maxs[g]
		}
		if outKind == KindInt {
			cells[g] = Int(int64(f))
		} else {
			cells[g] = Number(f)
		}
	}

	return &Column{name: a.name(), kind: outKind, cells: cells}, nil
}
