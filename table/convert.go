// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"
	"strconv"
)

// Convert returns a table with the named column coerced to the target kind.
// Coercion is strict and all-or-nothing: every present cell must convert or
// the whole operation fails with a wrapped ErrConvert naming the first
// offending row; no partially converted table is ever returned. The absent
// marker survives any conversion unchanged.
//
// Supported conversions:
//   - any kind → KindString: the display form (Value.String)
//   - KindString → KindNumber / KindInt / KindBool: strict strconv parse
//   - KindInt → KindNumber: exact widening
//   - KindNumber → KindInt: only integral values within int64 range
//   - KindBool → KindInt / KindNumber: false=0, true=1
//   - KindInt / KindNumber → KindBool: only exact 0 or 1
//
// Converting a column to its own kind returns an unchanged copy.
// Complexity: O(N).
func (t *Table) Convert(name string, to Kind) (*Table, error) {
	p, ok := t.pos[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrColumnNotFound)
	}
	if !to.valid() {
		return nil, ErrUnknownKind
	}
	src := t.cols[p]
	if src.kind == to {
		cols := make([]*Column, len(t.cols))
		copy(cols, t.cols)
		return newUnchecked(cols), nil
	}
	cells := make([]Value, len(src.cells))
	for i, v := range src.cells {
		cv, err := convertValue(v, to)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d (%s): %w", name, i, v, err)
		}
		cells[i] = cv
	}
	cols := make([]*Column, len(t.cols))
	copy(cols, t.cols)
	cols[p] = &Column{name: src.name, kind: to, cells: cells}

	return newUnchecked(cols), nil
}

// convertValue coerces a single value, absent passing through untouched.
func convertValue(v Value, to Kind) (Value, error) {
	if v.absent {
		return v, nil
	}
	if to == KindString {
		return String(v.String()), nil
	}
	switch v.kind {
	case KindString:
		return parseAs(v.s, to)
	case KindInt:
		switch to {
		case KindNumber:
			return Number(float64(v.i)), nil
		case KindBool:
			return intToBool(v.i)
		}
	case KindNumber:
		switch to {
		case KindInt:
			if math.IsNaN(v.f) || math.IsInf(v.f, 0) || v.f != math.Trunc(v.f) ||
				v.f < math.MinInt64 || v.f > math.MaxInt64 {
				return Value{}, ErrConvert
			}
			return Int(int64(v.f)), nil
		case KindBool:
			if v.f == 0 {
				return Bool(false), nil
			}
			if v.f == 1 {
				return Bool(true), nil
			}
			return Value{}, ErrConvert
		}
	case KindBool:
		switch to {
		case KindInt:
			if v.b {
				return Int(1), nil
			}
			return Int(0), nil
		case KindNumber:
			if v.b {
				return Number(1), nil
			}
			return Number(0), nil
		}
	}

	return Value{}, ErrConvert
}

// parseAs parses text into the target kind with strconv's strict forms.
func parseAs(s string, to Kind) (Value, error) {
	switch to {
	case KindInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, ErrConvert
		}
		return Int(i), nil
	case KindNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, ErrConvert
		}
		return Number(f), nil
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, ErrConvert
		}
		return Bool(b), nil
	default:
		return Value{}, ErrConvert
	}
}

// intToBool maps exact 0/1 to false/true.
func intToBool(i int64) (Value, error) {
	switch i {
	case 0:
		return Bool(false), nil
	case 1:
		return Bool(true), nil
	default:
		return Value{}, ErrConvert
	}
}
