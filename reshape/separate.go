// Package reshape: compound-key splitting.

package reshape

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tidytab/table"
)

// Separate splits each value of a KindString column on a literal separator
// and distributes the pieces across opts.Into, which replace the source
// column at its position. Wide headers often encode several variables at
// once ("1960_life_expectancy"); Separate is how they come apart.
//
// Piece-count mismatches are resolved by opts.Policy — SplitStrict fails,
// SplitFillRight absent-fills missing trailing pieces, SplitMergeExtra
// rejoins surplus pieces into the last name (so splitting
// "1960_life_expectancy" into two names keeps "1960" and
// "life_expectancy"). An absent source cell yields absent in every piece.
//
// New columns are KindString; with opts.Convert each one independently
// walks the quiet numeric ladder (int, then number, else text).
//
// Returns ErrNoSplitNames, ErrEmptySeparator, ErrUnknownPolicy, a wrapped
// table.ErrColumnNotFound/ErrTypeMismatch for a missing or non-string
// source, a *SplitError (matching ErrSplitCount) on policy failure, and a
// wrapped table.ErrDuplicateColumn when Into collides with another column.
// Complexity: O(N×pieces).
func Separate(t *table.Table, opts SeparateOptions) (*table.Table, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}
	if len(opts.Into) == 0 {
		return nil, ErrNoSplitNames
	}
	if opts.Separator == "" {
		return nil, ErrEmptySeparator
	}
	if !opts.Policy.valid() {
		return nil, ErrUnknownPolicy
	}
	src, err := t.Column(opts.Column)
	if err != nil {
		return nil, fmt.Errorf("separate: %w", err)
	}
	if src.Kind() != table.KindString {
		return nil, fmt.Errorf("separate %q is %s, want string: %w", opts.Column, src.Kind(), table.ErrTypeMismatch)
	}

	want := len(opts.Into)
	cells := make([][]table.Value, want)
	for p := range cells {
		cells[p] = make([]table.Value, src.Len())
	}
	in := src.Values()
	for r, v := range in {
		if v.IsAbsent() {
			for p := 0; p < want; p++ {
				cells[p][r] = table.Absent()
			}
			continue
		}
		pieces := strings.Split(v.Text(), opts.Separator)
		placed, perr := placePieces(pieces, want, opts.Policy, opts.Separator)
		if perr != nil {
			return nil, &SplitError{Row: r, Value: v.Text(), Got: len(pieces), Want: want}
		}
		for p := 0; p < want; p++ {
			cells[p][r] = placed[p]
		}
	}

	// Rebuild the column list with the pieces in the source position.
	srcPos := 0
	for i, name := range t.Columns() {
		if name == opts.Column {
			srcPos = i
			break
		}
	}
	outCols := make([]*table.Column, 0, t.Width()-1+want)
	for i, name := range t.Columns() {
		switch {
		case i == srcPos:
			for p, into := range opts.Into {
				c, cerr := table.NewColumn(into, table.KindString, cells[p]...)
				if cerr != nil {
					return nil, fmt.Errorf("separate: %w", cerr)
				}
				outCols = append(outCols, c)
			}
		default:
			c, _ := t.Column(name)
			outCols = append(outCols, c)
		}
	}

	out, err := table.New(outCols...)
	if err != nil {
		return nil, fmt.Errorf("separate: %w", err)
	}
	if opts.Convert {
		for _, into := range opts.Into {
			out = convertSoft(out, into)
		}
	}

	return out, nil
}

// placePieces distributes split pieces across want slots under the policy.
// The boolean error only signals "policy cannot place this count"; the
// caller attaches row context.
func placePieces(pieces []string, want int, policy SplitPolicy, sep string) ([]table.Value, error) {
	out := make([]table.Value, want)
	switch {
	case len(pieces) == want:
		for p, s := range pieces {
			out[p] = table.String(s)
		}

	case len(pieces) < want:
		if policy == SplitStrict {
			return nil, ErrSplitCount
		}
		// FillRight and MergeExtra both absent-fill missing tails.
		for p := range out {
			if p < len(pieces) {
				out[p] = table.String(pieces[p])
			} else {
				out[p] = table.Absent()
			}
		}

	default: // len(pieces) > want
		if policy != SplitMergeExtra {
			return nil, ErrSplitCount
		}
		for p := 0; p < want-1; p++ {
			out[p] = table.String(pieces[p])
		}
		out[want-1] = table.String(strings.Join(pieces[want-1:], sep))
	}

	return out, nil
}
