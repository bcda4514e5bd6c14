// Package reshape defines options, policies and sentinel errors for the
// reshape subpackage of github.com/katalvlaran/tidytab.
package reshape

import (
	"errors"
	"fmt"
)

// Sentinel errors for reshape operations.
var (
	// ErrNoValueColumns indicates Longer found no columns left to pivot.
	ErrNoValueColumns = errors.New("reshape: no value columns to pivot")
	// ErrSameColumn indicates Wider was given one column for both names and values.
	ErrSameColumn = errors.New("reshape: names and values columns must be distinct")
	// ErrAmbiguousKey indicates more than one row feeds the same (group, key)
	// cell in Wider; which value wins would be undefined, so none does.
	ErrAmbiguousKey = errors.New("reshape: duplicate key within one group")
	// ErrSplitCount indicates Separate produced a piece count the policy cannot place.
	ErrSplitCount = errors.New("reshape: split piece count does not match target names")
	// ErrNoSplitNames indicates Separate was given no target names.
	ErrNoSplitNames = errors.New("reshape: split needs at least one target name")
	// ErrNoSourceColumns indicates Unite was given no source columns.
	ErrNoSourceColumns = errors.New("reshape: unite needs at least one source column")
	// ErrEmptySeparator indicates Separate was given an empty separator.
	ErrEmptySeparator = errors.New("reshape: separator must be non-empty")
	// ErrUnknownPolicy indicates a SplitPolicy outside the declared enumeration.
	ErrUnknownPolicy = errors.New("reshape: unknown split policy")
)

// SplitPolicy decides what Separate does when a value splits into a piece
// count different from len(Into).
type SplitPolicy int

const (
	// SplitStrict fails with ErrSplitCount on any count mismatch.
	SplitStrict SplitPolicy = iota
	// SplitFillRight fills missing trailing pieces with the absent marker;
	// too many pieces still fail with ErrSplitCount.
	SplitFillRight
	// SplitMergeExtra rejoins surplus pieces (separator included) into the
	// last target name; too few pieces fill right like SplitFillRight.
	SplitMergeExtra
)

// String returns the lower-case policy name used by ParseSplitPolicy.
func (p SplitPolicy) String() string {
	switch p {
	case SplitStrict:
		return "strict"
	case SplitFillRight:
		return "fill"
	case SplitMergeExtra:
		return "merge"
	default:
		return "unknown"
	}
}

// ParseSplitPolicy maps a policy name back to its SplitPolicy,
// ErrUnknownPolicy otherwise.
func ParseSplitPolicy(s string) (SplitPolicy, error) {
	switch s {
	case "strict":
		return SplitStrict, nil
	case "fill":
		return SplitFillRight, nil
	case "merge":
		return SplitMergeExtra, nil
	default:
		return 0, ErrUnknownPolicy
	}
}

// valid reports whether p is one of the three declared policies.
func (p SplitPolicy) valid() bool {
	return p >= SplitStrict && p <= SplitMergeExtra
}

// SplitError carries the row context of a piece-count mismatch.
// It unwraps to ErrSplitCount, so errors.Is keeps working.
type SplitError struct {
	Row   int    // offending row index
	Value string // the unsplit source text
	Got   int    // pieces produced
	Want  int    // len(Into)
}

// Error implements the error interface.
func (e *SplitError) Error() string {
	return fmt.Sprintf("reshape: row %d: %q splits into %d pieces, want %d", e.Row, e.Value, e.Got, e.Want)
}

// Unwrap ties SplitError to the ErrSplitCount sentinel.
func (e *SplitError) Unwrap() error { return ErrSplitCount }

// Default column and separator names shared by the option constructors.
const (
	// DefaultNamesTo is the name column Longer emits when none is configured.
	DefaultNamesTo = "variable"
	// DefaultValuesTo is the value column Longer emits when none is configured.
	DefaultValuesTo = "value"
	// DefaultSeparator is the compound-key separator for Separate and Unite.
	DefaultSeparator = "_"
)

// LongerOptions tunes the wide→long reshape.
type LongerOptions struct {
	// IDColumns stay as-is; every other column is pivoted into rows.
	IDColumns []string
	// NamesTo is the output column receiving source column names.
	NamesTo string
	// ValuesTo is the output column receiving source cells.
	ValuesTo string
	// Convert coerces NamesTo to a numeric kind if every name parses;
	// on any parse failure the column silently stays text.
	Convert bool
}

// DefaultLongerOptions returns LongerOptions with NamesTo="variable",
// ValuesTo="value" and Convert off.
func DefaultLongerOptions() LongerOptions {
	return LongerOptions{NamesTo: DefaultNamesTo, ValuesTo: DefaultValuesTo}
}

// WiderOptions tunes the long→wide reshape.
type WiderOptions struct {
	// NamesFrom is the column whose distinct values become new column names.
	NamesFrom string
	// ValuesFrom is the column whose cells populate the new columns.
	ValuesFrom string
}

// DefaultWiderOptions mirrors DefaultLongerOptions, so
// Wider(Longer(t, defaults), defaults) round-trips.
func DefaultWiderOptions() WiderOptions {
	return WiderOptions{NamesFrom: DefaultNamesTo, ValuesFrom: DefaultValuesTo}
}

// SeparateOptions tunes compound-key splitting.
type SeparateOptions struct {
	// Column is the KindString column to split.
	Column string
	// Into names the columns the pieces land in, replacing Column in place.
	Into []string
	// Separator is the literal split separator (no regex).
	Separator string
	// Policy resolves piece-count mismatches.
	Policy SplitPolicy
	// Convert applies the numeric ladder to each new column independently.
	Convert bool
}

// DefaultSeparateOptions returns SeparateOptions with Separator="_" and
// SplitStrict.
func DefaultSeparateOptions() SeparateOptions {
	return SeparateOptions{Separator: DefaultSeparator, Policy: SplitStrict}
}

// UniteOptions tunes compound-key building.
type UniteOptions struct {
	// Columns are joined left to right; all of them are removed.
	Columns []string
	// Into is the new compound column, placed at the first source position.
	Into string
	// Separator is inserted between display forms; empty is allowed.
	Separator string
}

// DefaultUniteOptions returns UniteOptions with Separator="_".
func DefaultUniteOptions() UniteOptions {
	return UniteOptions{Separator: DefaultSeparator}
}
