// Package reshape: wide→long conversion.

package reshape

import (
	"fmt"

	"github.com/katalvlaran/tidytab/table"
)

// Longer pivots every non-id column of t into rows: one output row per
// (input row × value column), carrying the id cells, the source column's
// name under opts.NamesTo and its cell under opts.ValuesTo.
//
// Ordering is fixed: the outer loop walks input rows top to bottom, the
// inner loop walks value columns in their original left-to-right order, so
// the output has Len(t) × (#value columns) rows grouped by source row.
//
// The value column's kind is the common kind of all pivoted columns; an
// Int/Number mix widens to Number, any other mix falls back to the string
// display forms. Absent cells stay absent either way.
//
// With opts.Convert, the NamesTo column is coerced through the numeric
// ladder (int, then number) only when every name parses; a partial parse
// silently leaves the column as text — it never fails.
//
// Returns ErrNoValueColumns when the id columns cover the whole table,
// a wrapped table.ErrColumnNotFound for unknown id names, and a wrapped
// table.ErrDuplicateColumn when NamesTo/ValuesTo collide with an id column.
// Complexity: O(N×W).
func Longer(t *table.Table, opts LongerOptions) (*table.Table, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}
	if opts.NamesTo == "" {
		opts.NamesTo = DefaultNamesTo
	}
	if opts.ValuesTo == "" {
		opts.ValuesTo = DefaultValuesTo
	}

	// Validate ids up front; Select also rejects duplicated id names.
	ids, err := t.Select(opts.IDColumns...)
	if err != nil {
		return nil, fmt.Errorf("longer: %w", err)
	}
	idSet := make(map[string]bool, len(opts.IDColumns))
	for _, name := range opts.IDColumns {
		idSet[name] = true
	}

	// Value columns keep their original left-to-right order.
	var valueCols []*table.Column
	for _, name := range t.Columns() {
		if idSet[name] {
			continue
		}
		c, cerr := t.Column(name)
		if cerr != nil {
			return nil, fmt.Errorf("longer: %w", cerr)
		}
		valueCols = append(valueCols, c)
	}
	if len(valueCols) == 0 {
		return nil, ErrNoValueColumns
	}

	n, v := t.Len(), len(valueCols)
	valueKind := commonKind(valueCols)

	// Id columns: each input cell repeated once per value column.
	outCols := make([]*table.Column, 0, len(opts.IDColumns)+2)
	for _, name := range opts.IDColumns {
		src, _ := ids.Column(name)
		in := src.Values()
		cells := make([]table.Value, 0, n*v)
		for r := 0; r < n; r++ {
			for j := 0; j < v; j++ {
				cells = append(cells, in[r])
			}
		}
		c, cerr := table.NewColumn(name, src.Kind(), cells...)
		if cerr != nil {
			return nil, fmt.Errorf("longer: %w", cerr)
		}
		outCols = append(outCols, c)
	}

	// Names column: the value-column cycle, repeated per input row.
	nameCells := make([]table.Value, 0, n*v)
	valueCells := make([]table.Value, 0, n*v)
	snapshots := make([][]table.Value, v)
	for j, c := range valueCols {
		snapshots[j] = c.Values()
	}
	for r := 0; r < n; r++ {
		for j, c := range valueCols {
			nameCells = append(nameCells, table.String(c.Name()))
			valueCells = append(valueCells, widen(snapshots[j][r], c.Kind(), valueKind))
		}
	}
	nameCol, err := table.NewColumn(opts.NamesTo, table.KindString, nameCells...)
	if err != nil {
		return nil, fmt.Errorf("longer: %w", err)
	}
	valueCol, err := table.NewColumn(opts.ValuesTo, valueKind, valueCells...)
	if err != nil {
		return nil, fmt.Errorf("longer: %w", err)
	}
	outCols = append(outCols, nameCol, valueCol)

	out, err := table.New(outCols...)
	if err != nil {
		return nil, fmt.Errorf("longer: %w", err)
	}
	if opts.Convert {
		out = convertSoft(out, opts.NamesTo)
	}

	return out, nil
}

// commonKind resolves the output kind for a set of pivoted columns:
// all equal → that kind; Int/Number mix → Number; anything else → String.
func commonKind(cols []*table.Column) table.Kind {
	kind := cols[0].Kind()
	numericOnly := true
	uniform := true
	for _, c := range cols {
		if c.Kind() != kind {
			uniform = false
		}
		if c.Kind() != table.KindInt && c.Kind() != table.KindNumber {
			numericOnly = false
		}
	}
	switch {
	case uniform:
		return kind
	case numericOnly:
		return table.KindNumber
	default:
		return table.KindString
	}
}

// widen coerces one cell from its column kind to the resolved output kind.
// Only Int→Number and anything→String ever happen here, so it cannot fail.
func widen(v table.Value, from, to table.Kind) table.Value {
	if v.IsAbsent() || from == to {
		return v
	}
	if to == table.KindNumber && from == table.KindInt {
		return table.Number(float64(v.Integer()))
	}
	return table.String(v.String())
}

// convertSoft walks the numeric ladder over a text column: Int first, then
// Number. Any failure leaves the input unchanged — this is the one place
// coercion is intentionally quiet, per the Convert flag's contract.
func convertSoft(t *table.Table, name string) *table.Table {
	if got, err := t.Convert(name, table.KindInt); err == nil {
		return got
	}
	if got, err := t.Convert(name, table.KindNumber); err == nil {
		return got
	}
	return t
}
