package reshape_test

import (
	"testing"

	"github.com/katalvlaran/tidytab/reshape"
	"github.com/katalvlaran/tidytab/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireSameTable asserts two tables agree on columns, kinds and cells.
func requireSameTable(t *testing.T, want, got *table.Table) {
	t.Helper()
	require.Equal(t, want.Columns(), got.Columns(), "column order must match")
	require.Equal(t, want.Len(), got.Len(), "row count must match")
	for _, name := range want.Columns() {
		wc, err := want.Column(name)
		require.NoError(t, err)
		gc, err := got.Column(name)
		require.NoError(t, err)
		require.Equal(t, wc.Kind(), gc.Kind(), "column %q kind", name)
		require.Equal(t, wc.Values(), gc.Values(), "column %q cells", name)
	}
}

// TestWider_RoundTrip verifies the central law: Wider(Longer(T)) == T for
// unique id combinations, columns and cells alike.
func TestWider_RoundTrip(t *testing.T) {
	wide := fertilityWide(t)

	long, err := reshape.Longer(wide, reshape.LongerOptions{
		IDColumns: []string{"country"},
		NamesTo:   "year",
		ValuesTo:  "fertility",
	})
	require.NoError(t, err)

	back, err := reshape.Wider(long, reshape.WiderOptions{
		NamesFrom:  "year",
		ValuesFrom: "fertility",
	})
	require.NoError(t, err)
	requireSameTable(t, wide, back)
}

// TestWider_DefaultsRoundTrip verifies the default option pairing:
// Longer defaults feed Wider defaults.
func TestWider_DefaultsRoundTrip(t *testing.T) {
	wide := fertilityWide(t)
	long, err := reshape.Longer(wide, reshape.LongerOptions{IDColumns: []string{"country"}})
	require.NoError(t, err)
	back, err := reshape.Wider(long, reshape.DefaultWiderOptions())
	require.NoError(t, err)
	requireSameTable(t, wide, back)
}

// TestWider_AbsentForMissingPairs verifies unfed (group, key) cells get
// the absent marker rather than dropping rows or columns.
func TestWider_AbsentForMissingPairs(t *testing.T) {
	long, err := table.New(
		table.Strings("country", "Germany", "Germany", "South Korea"),
		table.Strings("year", "1960", "1961", "1960"),
		table.Numbers("fertility", 2.41, 2.44, 6.16),
	)
	require.NoError(t, err)

	got, err := reshape.Wider(long, reshape.WiderOptions{
		NamesFrom:  "year",
		ValuesFrom: "fertility",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"country", "1960", "1961"}, got.Columns())
	v, err := got.At(1, "1961")
	require.NoError(t, err)
	assert.True(t, v.IsAbsent(), "South Korea has no 1961 observation")
}

// TestWider_AmbiguousKey verifies duplicate (group, key) pairs are refused.
func TestWider_AmbiguousKey(t *testing.T) {
	long, err := table.New(
		table.Strings("country", "Germany", "Germany"),
		table.Strings("year", "1960", "1960"),
		table.Numbers("fertility", 2.41, 9.99),
	)
	require.NoError(t, err)

	_, err = reshape.Wider(long, reshape.WiderOptions{
		NamesFrom:  "year",
		ValuesFrom: "fertility",
	})
	assert.ErrorIs(t, err, reshape.ErrAmbiguousKey, "two values for one cell must error, never overwrite")
}

// TestWider_AmbiguityResolvedByAggregate shows the documented retry path:
// collapse duplicates first, then pivot.
func TestWider_AmbiguityResolvedByAggregate(t *testing.T) {
	long, err := table.New(
		table.Strings("country", "Germany", "Germany"),
		table.Strings("year", "1960", "1960"),
		table.Numbers("fertility", 2.25, 2.75),
	)
	require.NoError(t, err)

	collapsed, err := long.Aggregate([]string{"country", "year"},
		table.Agg{Column: "fertility", Fn: table.AggMean, As: "fertility"})
	require.NoError(t, err)

	got, err := reshape.Wider(collapsed, reshape.WiderOptions{
		NamesFrom:  "year",
		ValuesFrom: "fertility",
	})
	require.NoError(t, err)
	v, err := got.At(0, "1960")
	require.NoError(t, err)
	assert.Equal(t, table.Number(2.5), v, "mean of the duplicates")
}

// TestWider_AbsentKeyNamesNA verifies the documented quirk: an absent key
// value names its column "NA".
func TestWider_AbsentKeyNamesNA(t *testing.T) {
	year, err := table.NewColumn("year", table.KindString, table.String("1960"), table.Absent())
	require.NoError(t, err)
	long, err := table.New(
		table.Strings("country", "Germany", "Germany"),
		year,
		table.Numbers("fertility", 2.41, 2.44),
	)
	require.NoError(t, err)

	got, err := reshape.Wider(long, reshape.WiderOptions{
		NamesFrom:  "year",
		ValuesFrom: "fertility",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"country", "1960", "NA"}, got.Columns())
}

// TestWider_NoGroupColumns verifies a two-column table pivots into one row.
func TestWider_NoGroupColumns(t *testing.T) {
	long, err := table.New(
		table.Strings("variable", "a", "b"),
		table.Ints("value", 1, 2),
	)
	require.NoError(t, err)

	got, err := reshape.Wider(long, reshape.DefaultWiderOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Columns())
	assert.Equal(t, 1, got.Len(), "single implicit group")
	v, err := got.At(0, "b")
	require.NoError(t, err)
	assert.Equal(t, table.Int(2), v)
}

// TestWider_Errors covers the option and lookup sentinels.
func TestWider_Errors(t *testing.T) {
	long, err := table.New(
		table.Strings("variable", "a"),
		table.Ints("value", 1),
	)
	require.NoError(t, err)

	_, err = reshape.Wider(nil, reshape.DefaultWiderOptions())
	assert.ErrorIs(t, err, table.ErrNilTable)

	_, err = reshape.Wider(long, reshape.WiderOptions{NamesFrom: "value", ValuesFrom: "value"})
	assert.ErrorIs(t, err, reshape.ErrSameColumn)

	_, err = reshape.Wider(long, reshape.WiderOptions{NamesFrom: "year", ValuesFrom: "value"})
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}
