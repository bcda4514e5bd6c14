package tableio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tidytab/table"
	"github.com/katalvlaran/tidytab/tableio"
)

// fourKinds builds one table exercising every kind plus an absent cell.
func fourKinds(t *testing.T) *table.Table {
	t.Helper()
	votes, err := table.NewColumn("votes", table.KindInt,
		table.Int(9), table.Absent())
	require.NoError(t, err)
	tb, err := table.New(
		table.Strings("state", "Alabama", "Unknown"),
		table.Numbers("rate", 2.82, 0.5),
		votes,
		table.Bools("south", true, false),
	)
	require.NoError(t, err)
	return tb
}

// TestJSON_RoundTrip verifies that the document format preserves kinds
// exactly, unlike CSV where they would be re-inferred.
func TestJSON_RoundTrip(t *testing.T) {
	src := fourKinds(t)

	var buf bytes.Buffer
	require.NoError(t, tableio.WriteJSON(&buf, src))
	raw := buf.String()
	assert.Contains(t, raw, `"kind":"int"`, "the schema travels with the data")
	assert.Contains(t, raw, "null", "absent cells are JSON null")

	back, err := tableio.ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, src.Columns(), back.Columns())
	for _, name := range src.Columns() {
		assert.Equal(t, kindOf(t, src, name), kindOf(t, back, name),
			"column %q must keep its kind", name)
		assert.Equal(t, display(t, src, name), display(t, back, name),
			"column %q must keep its cells", name)
	}
}

// TestJSON_Int64Precision verifies that integers beyond float64's exact
// range survive the round-trip.
func TestJSON_Int64Precision(t *testing.T) {
	big := int64(1) << 53
	src, err := table.New(table.Ints("id", big+1, -big-1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tableio.WriteJSON(&buf, src))
	back, err := tableio.ReadJSON(&buf)
	require.NoError(t, err)

	v, err := back.At(0, "id")
	require.NoError(t, err)
	assert.Equal(t, big+1, v.Integer(), "2^53+1 must not round")
}

// TestReadJSON_BadDocuments verifies the document-shape failures.
func TestReadJSON_BadDocuments(t *testing.T) {
	read := func(s string) error {
		_, err := tableio.ReadJSON(strings.NewReader(s))
		return err
	}

	assert.ErrorIs(t, read(""), tableio.ErrEmptyInput)

	assert.ErrorIs(t, read(`{"columns":[],"rows":[]}`), tableio.ErrBadDocument,
		"a document must declare columns")

	err := read(`{"columns":[{"name":"x","kind":"decimal"}],"rows":[]}`)
	assert.ErrorIs(t, err, table.ErrUnknownKind)

	err = read(`{"columns":[{"name":"a","kind":"int"},{"name":"b","kind":"int"}],"rows":[[1]]}`)
	assert.ErrorIs(t, err, tableio.ErrBadDocument, "ragged row")
	assert.ErrorContains(t, err, "row 1")

	err = read(`{"columns":[{"name":"a","kind":"int"}],"rows":[["nine"]]}`)
	assert.ErrorIs(t, err, tableio.ErrBadDocument, "string cell in an int column")

	err = read(`{"columns":[{"name":"a","kind":"int"}],"rows":[[3.5]]}`)
	assert.ErrorIs(t, err, tableio.ErrBadDocument, "fractional cell in an int column")

	err = read(`{"columns":[{"name":"a","kind":"bool"}],"rows":[[1]]}`)
	assert.ErrorIs(t, err, tableio.ErrBadDocument, "number cell in a bool column")
}

// TestJSONFile_RoundTrip verifies the file-path conveniences.
func TestJSONFile_RoundTrip(t *testing.T) {
	src := fourKinds(t)

	path := filepath.Join(t.TempDir(), "votes.json")
	require.NoError(t, tableio.WriteJSONFile(path, src))

	back, err := tableio.ReadJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, src.Columns(), back.Columns())
	assert.Equal(t, display(t, src, "votes"), display(t, back, "votes"))

	_, err = tableio.ReadJSONFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "open json")
}
