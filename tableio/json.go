package tableio

import (
	"io"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/tidytab/table"
)

// The JSON document format is self-describing: the schema travels with
// the data, so a round-trip preserves column kinds exactly instead of
// re-inferring them.
//
//	{
//	  "columns": [{"name": "state", "kind": "string"},
//	              {"name": "electoral_votes", "kind": "int"}],
//	  "rows": [["Alabama", 9], ["Alaska", 3]]
//	}
//
// Absent cells are JSON null in both directions.
type document struct {
	Columns []columnSchema `json:"columns"`
	Rows    [][]any        `json:"rows"`
}

type columnSchema struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// ReadJSON parses one table document from r. The declared kinds are
// authoritative: every cell must be null or a JSON value matching its
// column's kind, and every row must match the schema width. Violations
// return a wrapped ErrBadDocument. Complexity: O(N×W).
func ReadJSON(r io.Reader) (*table.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, errors.Wrapf(err, "decode json")
	}
	if len(doc.Columns) == 0 {
		return nil, errors.Wrapf(ErrBadDocument, "no columns declared")
	}

	width := len(doc.Columns)
	names := make([]string, width)
	kinds := make([]table.Kind, width)
	for i, cs := range doc.Columns {
		k, err := table.ParseKind(cs.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", cs.Name)
		}
		names[i] = cs.Name
		kinds[i] = k
	}

	cells := make([][]table.Value, width)
	for i := range cells {
		cells[i] = make([]table.Value, 0, len(doc.Rows))
	}
	for r, row := range doc.Rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrBadDocument, "row %d has %d cells, want %d", r+1, len(row), width)
		}
		for c, cell := range row {
			v, err := decodeCell(cell, kinds[c])
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %q", r+1, names[c])
			}
			cells[c] = append(cells[c], v)
		}
	}

	cols := make([]*table.Column, width)
	for i := range cols {
		col, err := table.NewColumn(names[i], kinds[i], cells[i]...)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", names[i])
		}
		cols[i] = col
	}
	t, err := table.New(cols...)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble table")
	}

	return t, nil
}

// WriteJSON writes t to w as one table document followed by a newline.
// Note that non-finite numbers have no JSON spelling and fail the encode.
// Complexity: O(N×W).
func WriteJSON(w io.Writer, t *table.Table) error {
	if t == nil {
		return table.ErrNilTable
	}

	doc := document{
		Columns: make([]columnSchema, t.Width()),
		Rows:    make([][]any, t.Len()),
	}
	vals := snapshot(t)
	for i, name := range t.Columns() {
		c, _ := t.Column(name)
		doc.Columns[i] = columnSchema{Name: name, Kind: c.Kind().String()}
	}
	for r := range doc.Rows {
		row := make([]any, t.Width())
		for c := range vals {
			row[c] = encodeCell(vals[c][r])
		}
		doc.Rows[r] = row
	}

	return errors.Wrapf(json.NewEncoder(w).Encode(doc), "encode json")
}

// ReadJSONFile reads one table document from the file at path.
func ReadJSONFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open json")
	}
	defer f.Close()

	t, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	Logger().Debug("json file loaded",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("columns", t.Width()))

	return t, nil
}

// WriteJSONFile writes t to the file at path, truncating any previous
// content.
func WriteJSONFile(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create json")
	}
	if err := WriteJSON(f, t); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close json")
	}
	Logger().Debug("json file written",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("columns", t.Width()))

	return nil
}

// decodeCell maps one JSON value onto a cell of the declared kind.
func decodeCell(cell any, kind table.Kind) (table.Value, error) {
	if cell == nil {
		return table.Absent(), nil
	}
	switch kind {
	case table.KindString:
		s, ok := cell.(string)
		if !ok {
			return table.Value{}, errors.Wrapf(ErrBadDocument, "%v is not a string", cell)
		}
		return table.String(s), nil
	case table.KindNumber:
		n, ok := cell.(json.Number)
		if !ok {
			return table.Value{}, errors.Wrapf(ErrBadDocument, "%v is not a number", cell)
		}
		f, err := n.Float64()
		if err != nil {
			return table.Value{}, errors.Wrapf(ErrBadDocument, "%v is not a number", cell)
		}
		return table.Number(f), nil
	case table.KindInt:
		n, ok := cell.(json.Number)
		if !ok {
			return table.Value{}, errors.Wrapf(ErrBadDocument, "%v is not an int", cell)
		}
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return table.Value{}, errors.Wrapf(ErrBadDocument, "%v is not an int", cell)
		}
		return table.Int(i), nil
	case table.KindBool:
		b, ok := cell.(bool)
		if !ok {
			return table.Value{}, errors.Wrapf(ErrBadDocument, "%v is not a bool", cell)
		}
		return table.Bool(b), nil
	default:
		return table.Value{}, table.ErrUnknownKind
	}
}

// encodeCell maps one cell onto its JSON value, absent to null.
func encodeCell(v table.Value) any {
	if v.IsAbsent() {
		return nil
	}
	switch v.Kind() {
	case table.KindString:
		return v.Text()
	case table.KindNumber:
		return v.Float()
	case table.KindInt:
		return v.Integer()
	case table.KindBool:
		return v.Truth()
	default:
		return nil
	}
}
