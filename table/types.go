// SPDX-License-Identifier: MIT

// Package table: kind and value primitives for the column model.
// Kind enumerates the four cell types a column may carry; Value is the
// immutable tagged scalar stored in every cell, including the explicit
// absent marker. Columns live in column.go, tables in table.go, sentinel
// errors in errors.go.
package table

import (
	"math"
	"strconv"
)

// Kind identifies the element type of a Column and of every present Value in it.
type Kind int

const (
	// KindString holds free-form text.
	KindString Kind = iota
	// KindNumber holds double-precision floating point values.
	KindNumber
	// KindInt holds signed 64-bit integers.
	KindInt
	// KindBool holds logical values.
	KindBool
)

// String returns the lower-case name of the kind:
// "string", "number", "int" or "bool".
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name (as produced by Kind.String) back to its Kind.
// Returns ErrUnknownKind for any other spelling.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string":
		return KindString, nil
	case "number":
		return KindNumber, nil
	case "int":
		return KindInt, nil
	case "bool":
		return KindBool, nil
	default:
		return 0, ErrUnknownKind
	}
}

// valid reports whether k is one of the four declared kinds.
func (k Kind) valid() bool {
	return k >= KindString && k <= KindBool
}

// Value is a single table cell: a scalar of one Kind, or the absent marker.
// The absent marker is a first-class state distinct from zero or "" — it is
// how missing data is represented, never by omission. Values are immutable.
//
// Value is a comparable struct, but semantic comparison should go through
// Equal: unlike ==, Equal treats two absent values as equal regardless of
// how they were produced and compares numbers by bit pattern so NaN == NaN.
type Value struct {
	kind   Kind
	absent bool
	s      string
	f      float64
	i      int64
	b      bool
}

// String wraps s as a present string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number wraps f as a present number Value.
func Number(f float64) Value { return Value{kind: KindNumber, f: f} }

// Int wraps i as a present integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Bool wraps b as a present logical Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Absent returns the absent marker. It matches any column kind.
func Absent() Value { return Value{absent: true} }

// Kind reports the value's kind. Meaningless when IsAbsent reports true.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the absent marker.
func (v Value) IsAbsent() bool { return v.absent }

// Text returns the stored string for a present KindString value, "" otherwise.
func (v Value) Text() string {
	if v.absent || v.kind != KindString {
		return ""
	}
	return v.s
}

// Float returns the stored number for a present KindNumber value, 0 otherwise.
func (v Value) Float() float64 {
	if v.absent || v.kind != KindNumber {
		return 0
	}
	return v.f
}

// Integer returns the stored integer for a present KindInt value, 0 otherwise.
func (v Value) Integer() int64 {
	if v.absent || v.kind != KindInt {
		return 0
	}
	return v.i
}

// Truth returns the stored bool for a present KindBool value, false otherwise.
func (v Value) Truth() bool {
	if v.absent || v.kind != KindBool {
		return false
	}
	return v.b
}

// String renders the display form of the value; the absent marker renders
// as "NA". Numbers use the shortest representation that round-trips
// (strconv 'g' with precision -1), so Display→parse→Display is stable.
func (v Value) String() string {
	if v.absent {
		return "NA"
	}
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Equal reports semantic equality: absent equals absent, present values are
// equal when kinds match and payloads match. Numbers compare by bit pattern,
// so NaN equals NaN and +0 differs from -0.
func (v Value) Equal(o Value) bool {
	if v.absent || o.absent {
		return v.absent && o.absent
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	case KindInt:
		return v.i == o.i
	case KindBool:
		return v.b == o.b
	default:
		return v.s == o.s
	}
}

// less orders two present values of the same kind; used by Sort.
// Numbers place NaN after ordinary values, bools order false before true.
func (v Value) less(o Value) bool {
	switch v.kind {
	case KindNumber:
		vn, on := math.IsNaN(v.f), math.IsNaN(o.f)
		if vn || on {
			return !vn && on
		}
		return v.f < o.f
	case KindInt:
		return v.i < o.i
	case KindBool:
		return !v.b && o.b
	default:
		return v.s < o.s
	}
}
