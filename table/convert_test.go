// SPDX-License-Identifier: MIT

package table_test

import (
	"testing"

	"github.com/katalvlaran/tidytab/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvert_StringToInt verifies the strict parse path and that absent
// cells pass through untouched.
func TestConvert_StringToInt(t *testing.T) {
	tb := mustTable(t, mustColumn(t, "year", table.KindString,
		table.String("1960"), table.Absent(), table.String("1961")))

	got, err := tb.Convert("year", table.KindInt)
	require.NoError(t, err)
	c, err := got.Column("year")
	require.NoError(t, err)
	assert.Equal(t, table.KindInt, c.Kind())
	assert.Equal(t, []table.Value{
		table.Int(1960), table.Absent(), table.Int(1961),
	}, c.Values())

	// Input table keeps its string column.
	orig, err := tb.Column("year")
	require.NoError(t, err)
	assert.Equal(t, table.KindString, orig.Kind(), "input never mutated")
}

// TestConvert_AllOrNothing verifies one bad cell fails the whole column.
func TestConvert_AllOrNothing(t *testing.T) {
	tb := mustTable(t, table.Strings("v", "1", "2", "x"))

	_, err := tb.Convert("v", table.KindInt)
	assert.ErrorIs(t, err, table.ErrConvert, "partial parses must not produce a table")
}

// TestConvert_NumericRules covers the numeric crossings: widening,
// integral-only narrowing, and bool bridges.
func TestConvert_NumericRules(t *testing.T) {
	tb := mustTable(t,
		table.Ints("i", 3),
		table.Numbers("whole", 4),
		table.Numbers("frac", 2.5),
		table.Bools("b", true),
	)

	widened, err := tb.Convert("i", table.KindNumber)
	require.NoError(t, err)
	v, err := widened.At(0, "i")
	require.NoError(t, err)
	assert.Equal(t, table.Number(3), v)

	narrowed, err := tb.Convert("whole", table.KindInt)
	require.NoError(t, err)
	v, err = narrowed.At(0, "whole")
	require.NoError(t, err)
	assert.Equal(t, table.Int(4), v)

	_, err = tb.Convert("frac", table.KindInt)
	assert.ErrorIs(t, err, table.ErrConvert, "2.5 is not integral")

	asInt, err := tb.Convert("b", table.KindInt)
	require.NoError(t, err)
	v, err = asInt.At(0, "b")
	require.NoError(t, err)
	assert.Equal(t, table.Int(1), v)
}

// TestConvert_ToString verifies every kind renders its display form.
func TestConvert_ToString(t *testing.T) {
	tb := mustTable(t,
		table.Numbers("n", 2.5),
		table.Ints("i", 1960),
		table.Bools("b", false),
	)
	for name, want := range map[string]string{"n": "2.5", "i": "1960", "b": "false"} {
		got, err := tb.Convert(name, table.KindString)
		require.NoError(t, err)
		v, err := got.At(0, name)
		require.NoError(t, err)
		assert.Equal(t, table.String(want), v, "column %q display form", name)
	}
}

// TestConvert_Errors covers unknown column, unknown kind and same-kind copy.
func TestConvert_Errors(t *testing.T) {
	tb := mustTable(t, table.Strings("s", "a"))

	_, err := tb.Convert("nope", table.KindInt)
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
	_, err = tb.Convert("s", table.Kind(42))
	assert.ErrorIs(t, err, table.ErrUnknownKind)

	same, err := tb.Convert("s", table.KindString)
	require.NoError(t, err)
	requireSameTable(t, tb, same)
}
