// SPDX-License-Identifier: MIT

package table_test

import (
	"testing"

	"github.com/katalvlaran/tidytab/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// murders returns the small five-state table most verb tests run on.
func murders(t *testing.T) *table.Table {
	return mustTable(t,
		table.Strings("state", "Alabama", "Alaska", "Arizona", "Arkansas", "California"),
		table.Numbers("rate", 2.67, 2.68, 3.63, 3.15, 3.37),
		table.Ints("total", 135, 19, 232, 93, 1257),
	)
}

// TestSelect_OrderAndErrors verifies projection order, unknown names and
// duplicate selections.
func TestSelect_OrderAndErrors(t *testing.T) {
	tb := murders(t)

	got, err := tb.Select("total", "state")
	require.NoError(t, err)
	assert.Equal(t, []string{"total", "state"}, got.Columns(), "selection fixes the new order")
	assert.Equal(t, 5, got.Len(), "rows untouched")

	_, err = tb.Select("population")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
	_, err = tb.Select("state", "state")
	assert.ErrorIs(t, err, table.ErrDuplicateColumn)
}

// TestDrop_KeepsOrder verifies dropped columns vanish and the rest keep order.
func TestDrop_KeepsOrder(t *testing.T) {
	tb := murders(t)

	got, err := tb.Drop("rate")
	require.NoError(t, err)
	assert.Equal(t, []string{"state", "total"}, got.Columns())

	all, err := tb.Drop("state", "rate", "total")
	require.NoError(t, err)
	assert.Equal(t, 0, all.Width(), "dropping all columns yields the empty table")
	assert.Equal(t, 0, all.Len())

	_, err = tb.Drop("nope")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

// TestRename_Basic covers renaming, self-rename and the error paths.
func TestRename_Basic(t *testing.T) {
	tb := murders(t)

	got, err := tb.Rename("total", "murders")
	require.NoError(t, err)
	assert.Equal(t, []string{"state", "rate", "murders"}, got.Columns(), "position preserved")
	assert.True(t, tb.Has("total"), "input table untouched")

	self, err := tb.Rename("rate", "rate")
	require.NoError(t, err, "self-rename is a no-op copy")
	requireSameTable(t, tb, self)

	_, err = tb.Rename("nope", "x")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
	_, err = tb.Rename("rate", "state")
	assert.ErrorIs(t, err, table.ErrDuplicateColumn)
	_, err = tb.Rename("rate", "")
	assert.ErrorIs(t, err, table.ErrEmptyName)
}

// TestHead_Clamps verifies head truncation, over-asking and negative n.
func TestHead_Clamps(t *testing.T) {
	tb := murders(t)

	got, err := tb.Head(2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	v, err := got.At(1, "state")
	require.NoError(t, err)
	assert.Equal(t, table.String("Alaska"), v)

	all, err := tb.Head(50)
	require.NoError(t, err)
	assert.Equal(t, 5, all.Len(), "n beyond Len keeps everything")

	_, err = tb.Head(-1)
	assert.ErrorIs(t, err, table.ErrRowRange)
}

// TestFilter_Predicate verifies row selection, absent visibility and the
// nil-predicate sentinel.
func TestFilter_Predicate(t *testing.T) {
	tb := murders(t)

	low, err := tb.Filter("rate", func(v table.Value) bool { return v.Float() <= 3.0 })
	require.NoError(t, err)
	assert.Equal(t, 2, low.Len(), "two states at or under 3.0")

	_, err = tb.Filter("rate", nil)
	assert.ErrorIs(t, err, table.ErrNilPredicate)
	_, err = tb.Filter("nope", func(table.Value) bool { return true })
	assert.ErrorIs(t, err, table.ErrColumnNotFound)

	// Absent cells reach the predicate and can be kept or dropped.
	withNA := mustTable(t, mustColumn(t, "v", table.KindNumber,
		table.Number(1), table.Absent(), table.Number(2)))
	present, err := withNA.Filter("v", func(v table.Value) bool { return !v.IsAbsent() })
	require.NoError(t, err)
	assert.Equal(t, 2, present.Len(), "absent rows dropped by predicate")
}

// mustColumn builds a validated column and fails the test on error.
func mustColumn(t *testing.T, name string, kind table.Kind, cells ...table.Value) *table.Column {
	t.Helper()
	c, err := table.NewColumn(name, kind, cells...)
	require.NoError(t, err)
	return c
}

// TestSort_StableAbsentLast verifies multi-key ordering, stability and
// absent-last placement.
func TestSort_StableAbsentLast(t *testing.T) {
	tb := mustTable(t,
		table.Strings("g", "b", "a", "b", "a"),
		mustColumn(t, "x", table.KindInt,
			table.Int(2), table.Int(9), table.Absent(), table.Int(1)),
	)

	got, err := tb.Sort("g", "x")
	require.NoError(t, err)
	gCol, err := got.Column("g")
	require.NoError(t, err)
	xCol, err := got.Column("x")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{
		table.String("a"), table.String("a"), table.String("b"), table.String("b"),
	}, gCol.Values())
	assert.Equal(t, []table.Value{
		table.Int(1), table.Int(9), table.Int(2), table.Absent(),
	}, xCol.Values(), "ascending within group, absent last")

	same, err := tb.Sort()
	require.NoError(t, err, "no keys leaves order unchanged")
	requireSameTable(t, tb, same)

	_, err = tb.Sort("nope")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

// TestDistinct_FirstOccurrence verifies full-row deduplication order.
func TestDistinct_FirstOccurrence(t *testing.T) {
	tb := mustTable(t,
		table.Strings("k", "x", "y", "x", "x"),
		table.Ints("v", 1, 2, 1, 3),
	)

	got := tb.Distinct()
	assert.Equal(t, 3, got.Len(), "(x,1) duplicate removed")
	kCol, err := got.Column("k")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{
		table.String("x"), table.String("y"), table.String("x"),
	}, kCol.Values(), "first occurrences in row order")
}

// TestConcat_AlignsByName verifies order-independent schema matching and
// the mismatch sentinels.
func TestConcat_AlignsByName(t *testing.T) {
	a := mustTable(t,
		table.Strings("state", "Ohio"),
		table.Ints("votes", 18),
	)
	// Same schema, reversed column order.
	b := mustTable(t,
		table.Ints("votes", 6),
		table.Strings("state", "Iowa"),
	)

	got, err := a.Concat(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"state", "votes"}, got.Columns(), "result uses the receiver's order")
	assert.Equal(t, 2, got.Len())
	v, err := got.At(1, "state")
	require.NoError(t, err)
	assert.Equal(t, table.String("Iowa"), v)

	_, err = a.Concat(mustTable(t, table.Strings("state", "x")))
	assert.ErrorIs(t, err, table.ErrSchemaMismatch, "missing column must error")

	_, err = a.Concat(mustTable(t,
		table.Strings("state", "x"), table.Numbers("votes", 6)))
	assert.ErrorIs(t, err, table.ErrSchemaMismatch, "kind clash must error")

	_, err = a.Concat(nil)
	assert.ErrorIs(t, err, table.ErrNilTable)
}
