package join

import (
	"errors"
)

// Sentinel errors for join operations.
var (
	// ErrNoSharedKey indicates a natural join found no column name present in both tables.
	ErrNoSharedKey = errors.New("join: tables share no key column")
	// ErrKeyKind indicates a key column whose kinds differ between the two tables.
	ErrKeyKind = errors.New("join: key column kinds differ between tables")
	// ErrUnknownMode indicates a Mode outside the declared enumeration.
	ErrUnknownMode = errors.New("join: unknown join mode")
)

// Mode selects the matching policy applied to the two input tables.
type Mode int

const (
	// InnerJoin keeps rows whose key is present in both tables.
	InnerJoin Mode = iota
	// LeftJoin keeps every left row, absent-filling unmatched right cells.
	LeftJoin
	// RightJoin keeps every right row, absent-filling unmatched left cells.
	RightJoin
	// FullJoin keeps the key union: left rows first, then unmatched right rows.
	FullJoin
	// SemiJoin keeps left rows with at least one match, left columns only,
	// never replicated.
	SemiJoin
	// AntiJoin keeps left rows with no match at all, left columns only.
	AntiJoin
)

// String returns the lower-case mode name used by ParseMode.
func (m Mode) String() string {
	switch m {
	case InnerJoin:
		return "inner"
	case LeftJoin:
		return "left"
	case RightJoin:
		return "right"
	case FullJoin:
		return "full"
	case SemiJoin:
		return "semi"
	case AntiJoin:
		return "anti"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name back to its Mode, ErrUnknownMode otherwise.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "inner":
		return InnerJoin, nil
	case "left":
		return LeftJoin, nil
	case "right":
		return RightJoin, nil
	case "full":
		return FullJoin, nil
	case "semi":
		return SemiJoin, nil
	case "anti":
		return AntiJoin, nil
	default:
		return 0, ErrUnknownMode
	}
}

// valid reports whether m is one of the six declared modes.
func (m Mode) valid() bool {
	return m >= InnerJoin && m <= AntiJoin
}

// DefaultSuffix disambiguates right-side column names that collide with a
// left-side name.
const DefaultSuffix = "_right"

// Options tunes a single Join call.
type Options struct {
	// Mode is the matching policy; the zero value is InnerJoin.
	Mode Mode
	// On lists the key columns. Empty means a natural join: every column
	// name present in both tables, in the left table's order.
	On []string
	// Suffix is appended to right-side non-key columns whose name collides
	// with a left-side column; empty means DefaultSuffix. The left name
	// always stays unchanged.
	Suffix string
}

// DefaultOptions returns Options with InnerJoin, a natural key and
// DefaultSuffix.
func DefaultOptions() Options {
	return Options{Suffix: DefaultSuffix}
}
