// Package render turns tables into terminal text: a plain aligned layout
// for pipes and logs, and a lipgloss-styled variant for interactive use.
// Numeric columns are right-aligned, text and bool columns left-aligned,
// and cell widths are measured in display cells so wide runes line up.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/tidytab/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Options tunes table rendering.
type Options struct {
	// MaxRows caps the rendered rows; the remainder collapses into a
	// footer line. Zero or negative means every row.
	MaxRows int
	// MaxWidth caps each cell's display width, truncating with an
	// ellipsis. Zero or negative means no cap.
	MaxWidth int
	// ShowKinds adds a second header line with the column kinds,
	// spelled <int>, <number>, <string>, <bool>.
	ShowKinds bool
}

// DefaultOptions renders at most 20 rows with kinds shown.
func DefaultOptions() Options {
	return Options{MaxRows: 20, ShowKinds: true}
}

// Format renders t as plain aligned text. The last line carries no
// newline. Returns table.ErrNilTable for a nil table.
func Format(t *table.Table, opts Options) (string, error) {
	g, err := newGrid(t, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(g.line(g.header, -1))
	if opts.ShowKinds {
		b.WriteString("\n")
		b.WriteString(g.line(g.kinds, -1))
	}
	for r := range g.cells {
		b.WriteString("\n")
		b.WriteString(g.line(g.cells[r], -1))
	}
	if g.more > 0 {
		b.WriteString("\n")
		b.WriteString(g.footer())
	}

	return b.String(), nil
}

// Styled renders the same layout as Format with lipgloss styling: bold
// headers, dimmed kinds and footer, highlighted absent cells. Under a
// non-terminal profile the styles degrade to plain text.
func Styled(t *table.Table, opts Options) (string, error) {
	g, err := newGrid(t, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(g.line(g.header, -1)))
	if opts.ShowKinds {
		b.WriteString("\n")
		b.WriteString(kindStyle.Render(g.line(g.kinds, -1)))
	}
	for r := range g.cells {
		b.WriteString("\n")
		b.WriteString(g.line(g.cells[r], r))
	}
	if g.more > 0 {
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(g.footer()))
	}

	return b.String(), nil
}

// grid is the measured cell layout shared by Format and Styled.
type grid struct {
	header []string
	kinds  []string
	cells  [][]string
	absent [][]bool
	widths []int
	right  []bool
	more   int
}

// newGrid measures t under opts: truncated display forms, column widths
// and alignment.
func newGrid(t *table.Table, opts Options) (*grid, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}

	rows := t.Len()
	more := 0
	if opts.MaxRows > 0 && rows > opts.MaxRows {
		more = rows - opts.MaxRows
		rows = opts.MaxRows
	}

	g := &grid{
		header: t.Columns(),
		kinds:  make([]string, t.Width()),
		cells:  make([][]string, rows),
		absent: make([][]bool, rows),
		widths: make([]int, t.Width()),
		right:  make([]bool, t.Width()),
		more:   more,
	}
	for r := range g.cells {
		g.cells[r] = make([]string, t.Width())
		g.absent[r] = make([]bool, t.Width())
	}

	for c := 0; c < t.Width(); c++ {
		col, err := t.ColumnAt(c)
		if err != nil {
			return nil, err
		}
		g.kinds[c] = "<" + col.Kind().String() + ">"
		g.right[c] = col.Kind() == table.KindInt || col.Kind() == table.KindNumber

		w := runewidth.StringWidth(g.header[c])
		if opts.ShowKinds && runewidth.StringWidth(g.kinds[c]) > w {
			w = runewidth.StringWidth(g.kinds[c])
		}
		vals := col.Values()
		for r := 0; r < rows; r++ {
			s := vals[r].String()
			if opts.MaxWidth > 0 {
				s = runewidth.Truncate(s, opts.MaxWidth, "…")
			}
			g.cells[r][c] = s
			g.absent[r][c] = vals[r].IsAbsent()
			if cw := runewidth.StringWidth(s); cw > w {
				w = cw
			}
		}
		g.widths[c] = w
	}

	return g, nil
}

// line pads one row of cells into a single text line. A non-negative row
// styles the absent cells of that data row; padding happens before
// styling so alignment survives the escape codes.
func (g *grid) line(cells []string, row int) string {
	parts := make([]string, len(cells))
	for c, s := range cells {
		pad := strings.Repeat(" ", g.widths[c]-runewidth.StringWidth(s))
		if g.right[c] {
			s = pad + s
		} else {
			s = s + pad
		}
		if row >= 0 && g.absent[row][c] {
			s = absentStyle.Render(s)
		}
		parts[c] = s
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// footer spells out how many rows the MaxRows cap hid.
func (g *grid) footer() string {
	if g.more == 1 {
		return "… (1 more row)"
	}
	return fmt.Sprintf("… (%d more rows)", g.more)
}
