// Package reshape: compound-key building.

package reshape

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tidytab/table"
)

// Unite is the inverse of Separate: the display forms of the named columns
// are concatenated left to right with opts.Separator into one new
// KindString column, placed where the first source column stood; every
// source column is removed.
//
// Absent cells contribute the literal "NA" to the compound, so the output
// column is always fully present; round-tripping through Separate therefore
// holds only for fully present sources. An empty separator is allowed.
//
// Returns ErrNoSourceColumns, a wrapped table.ErrColumnNotFound for unknown
// sources, a wrapped table.ErrDuplicateColumn for a repeated source name or
// when opts.Into collides with a surviving column, and table.ErrEmptyName
// for an empty opts.Into.
// Complexity: O(N×sources).
func Unite(t *table.Table, opts UniteOptions) (*table.Table, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}
	if len(opts.Columns) == 0 {
		return nil, ErrNoSourceColumns
	}
	if opts.Into == "" {
		return nil, table.ErrEmptyName
	}
	srcSet := make(map[string]bool, len(opts.Columns))
	sources := make([]*table.Column, len(opts.Columns))
	for i, name := range opts.Columns {
		if srcSet[name] {
			return nil, fmt.Errorf("unite source %q: %w", name, table.ErrDuplicateColumn)
		}
		srcSet[name] = true
		c, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("unite: %w", err)
		}
		sources[i] = c
	}

	// Compound cells: display forms joined in the order given.
	parts := make([]string, len(sources))
	cells := make([]table.Value, t.Len())
	snapshots := make([][]table.Value, len(sources))
	for i, c := range sources {
		snapshots[i] = c.Values()
	}
	for r := 0; r < t.Len(); r++ {
		for i := range sources {
			parts[i] = snapshots[i][r].String()
		}
		cells[r] = table.String(strings.Join(parts, opts.Separator))
	}
	united, err := table.NewColumn(opts.Into, table.KindString, cells...)
	if err != nil {
		return nil, fmt.Errorf("unite: %w", err)
	}

	// The compound takes the first source's position; sources vanish.
	firstPos := -1
	for i, name := range t.Columns() {
		if name == opts.Columns[0] {
			firstPos = i
			break
		}
	}
	outCols := make([]*table.Column, 0, t.Width()-len(sources)+1)
	for i, name := range t.Columns() {
		switch {
		case i == firstPos:
			outCols = append(outCols, united)
		case srcSet[name]:
			// dropped
		default:
			c, _ := t.Column(name)
			outCols = append(outCols, c)
		}
	}

	out, err := table.New(outCols...)
	if err != nil {
		return nil, fmt.Errorf("unite: %w", err)
	}

	return out, nil
}
