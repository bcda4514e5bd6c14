package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tidytab/render"
	"github.com/katalvlaran/tidytab/table"
)

// votesTable returns a two-row table with one absent cell.
func votesTable(t *testing.T) *table.Table {
	t.Helper()
	votes, err := table.NewColumn("votes", table.KindInt, table.Int(9), table.Absent())
	require.NoError(t, err)
	tb, err := table.New(table.Strings("state", "Alabama", "Unknown"), votes)
	require.NoError(t, err)
	return tb
}

// TestFormat_Alignment verifies the plain layout: left-aligned text,
// right-aligned numbers, two-space gutters, no trailing spaces.
func TestFormat_Alignment(t *testing.T) {
	got, err := render.Format(votesTable(t), render.Options{})
	require.NoError(t, err)

	want := strings.Join([]string{
		"state    votes",
		"Alabama      9",
		"Unknown     NA",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestFormat_ShowKinds verifies the tibble-style kind line under the
// header and that it widens columns when needed.
func TestFormat_ShowKinds(t *testing.T) {
	got, err := render.Format(votesTable(t), render.Options{ShowKinds: true})
	require.NoError(t, err)

	want := strings.Join([]string{
		"state     votes",
		"<string>  <int>",
		"Alabama       9",
		"Unknown      NA",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestFormat_MaxRows verifies the footer accounting, singular and plural.
func TestFormat_MaxRows(t *testing.T) {
	tb, err := table.New(table.Strings("state", "Alabama", "Alaska", "Arizona"))
	require.NoError(t, err)

	got, err := render.Format(tb, render.Options{MaxRows: 1})
	require.NoError(t, err)
	assert.Equal(t, "state\nAlabama\n… (2 more rows)", got)

	two, err := table.New(table.Strings("state", "Alabama", "Alaska"))
	require.NoError(t, err)
	got, err = render.Format(two, render.Options{MaxRows: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "… (1 more row)"), "singular footer, got %q", got)

	full, err := render.Format(tb, render.Options{})
	require.NoError(t, err)
	assert.NotContains(t, full, "…", "no footer when every row fits")
}

// TestFormat_MaxWidth verifies per-cell truncation with an ellipsis.
func TestFormat_MaxWidth(t *testing.T) {
	got, err := render.Format(votesTable(t), render.Options{MaxWidth: 5})
	require.NoError(t, err)

	assert.Contains(t, got, "Alab…")
	assert.Contains(t, got, "Unkn…")
	assert.NotContains(t, got, "Alabama")
}

// TestFormat_NilTable verifies the nil guard.
func TestFormat_NilTable(t *testing.T) {
	_, err := render.Format(nil, render.DefaultOptions())
	assert.ErrorIs(t, err, table.ErrNilTable)
	_, err = render.Styled(nil, render.DefaultOptions())
	assert.ErrorIs(t, err, table.ErrNilTable)
}

// TestStyled_CarriesAllCells verifies the styled variant renders the same
// rows and cells; the exact escape codes depend on the terminal profile,
// so only the text content is pinned.
func TestStyled_CarriesAllCells(t *testing.T) {
	got, err := render.Styled(votesTable(t), render.DefaultOptions())
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4, "header, kinds and two data rows")
	assert.Contains(t, got, "state")
	assert.Contains(t, got, "<int>")
	assert.Contains(t, got, "Alabama")
	assert.Contains(t, got, "NA")
}
