// Package tableio moves tables across process boundaries: CSV and a
// self-describing JSON document format, over io.Reader/io.Writer pairs
// plus file-path conveniences. Reading validates eagerly (header names,
// rectangular rows, declared kinds) so a returned table always satisfies
// the table package's invariants; nothing is ever constructed half-way.
//
// File-level operations emit debug events through Logger, which is a
// no-op unless SetLogger installs a real logger. Streaming reads and
// writes never log.
package tableio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/tidytab/table"
)

// CSVOptions tunes CSV reading and writing. The zero value is not useful;
// start from DefaultCSVOptions.
type CSVOptions struct {
	// Comma is the field delimiter; zero means ','.
	Comma rune
	// NAStrings lists the cell spellings read as the absent marker.
	// Nil means DefaultNAStrings; an explicit empty slice disables
	// absent detection entirely.
	NAStrings []string
	// NAOut is the spelling written for absent cells; empty means "NA".
	NAOut string
	// InferKinds enables per-column kind inference on read. When false
	// every column comes back as KindString.
	InferKinds bool
}

// DefaultNAStrings are the cell spellings treated as absent on read.
func DefaultNAStrings() []string { return []string{"", "NA"} }

// DefaultCSVOptions returns comma-separated, "NA"-marked, kind-inferring
// options.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Comma:      ',',
		NAStrings:  DefaultNAStrings(),
		NAOut:      "NA",
		InferKinds: true,
	}
}

// ReadCSV parses one table from r. The first record is the header; it
// must be non-empty with unique, non-blank names (ErrHeader otherwise).
// Every data row must match the header width (ErrRaggedRow). Cells equal
// to one of opts.NAStrings become the absent marker.
//
// With opts.InferKinds, each column independently takes the narrowest
// kind that parses every present cell: Int, then Number, then Bool
// (only the words "true" and "false", any casing), falling back to
// String. A column with no present cells stays String.
// Complexity: O(N×W).
func ReadCSV(r io.Reader, opts CSVOptions) (*table.Table, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	if opts.NAStrings == nil {
		opts.NAStrings = DefaultNAStrings()
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, errors.Wrapf(err, "csv header")
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	// Column-major accumulation: cells[c][r] with a parallel absent mask.
	width := len(header)
	cells := make([][]string, width)
	absent := make([][]bool, width)
	row := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, errors.Wrapf(ErrRaggedRow, "row %d has %d fields, want %d", row, len(rec), width)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "csv row %d", row)
		}
		for c, s := range rec {
			cells[c] = append(cells[c], s)
			absent[c] = append(absent[c], isNA(s, opts.NAStrings))
		}
	}

	cols := make([]*table.Column, width)
	for c, name := range header {
		kind := table.KindString
		if opts.InferKinds {
			kind = inferKind(cells[c], absent[c])
		}
		col, err := buildColumn(name, kind, cells[c], absent[c])
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", name)
		}
		cols[c] = col
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble table")
	}

	return t, nil
}

// WriteCSV writes t to w: one header record, then one record per row.
// Absent cells are spelled opts.NAOut, all other cells use their display
// form. Complexity: O(N×W).
func WriteCSV(w io.Writer, t *table.Table, opts CSVOptions) error {
	if t == nil {
		return table.ErrNilTable
	}
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	if opts.NAOut == "" {
		opts.NAOut = "NA"
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.Comma
	if err := cw.Write(t.Columns()); err != nil {
		return errors.Wrapf(err, "csv header")
	}

	vals := snapshot(t)
	rec := make([]string, t.Width())
	for r := 0; r < t.Len(); r++ {
		for c := range vals {
			v := vals[c][r]
			if v.IsAbsent() {
				rec[c] = opts.NAOut
			} else {
				rec[c] = v.String()
			}
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "csv row %d", r)
		}
	}
	cw.Flush()

	return errors.Wrapf(cw.Error(), "csv flush")
}

// ReadCSVFile reads one table from the file at path.
func ReadCSVFile(path string, opts CSVOptions) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open csv")
	}
	defer f.Close()

	t, err := ReadCSV(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	Logger().Debug("csv file loaded",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("columns", t.Width()))

	return t, nil
}

// WriteCSVFile writes t to the file at path, truncating any previous
// content.
func WriteCSVFile(path string, t *table.Table, opts CSVOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create csv")
	}
	if err := WriteCSV(f, t, opts); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close csv")
	}
	Logger().Debug("csv file written",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("columns", t.Width()))

	return nil
}

// checkHeader rejects blank and duplicated column names up front, before
// any rows are parsed.
func checkHeader(header []string) error {
	if len(header) == 0 {
		return errors.Wrapf(ErrHeader, "no columns")
	}
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if name == "" {
			return errors.Wrapf(ErrHeader, "column %d has a blank name", i+1)
		}
		if seen[name] {
			return errors.Wrapf(ErrHeader, "column %q appears twice", name)
		}
		seen[name] = true
	}
	return nil
}

// isNA reports whether the raw cell spells the absent marker.
func isNA(s string, naStrings []string) bool {
	for _, na := range naStrings {
		if s == na {
			return true
		}
	}
	return false
}

// inferKind picks the narrowest kind that parses every present cell,
// trying Int, Number and Bool in that order. Absent cells carry no
// evidence, so a fully absent column stays String.
func inferKind(cells []string, absent []bool) table.Kind {
	present := false
	canInt, canNum, canBool := true, true, true
	for i, s := range cells {
		if absent[i] {
			continue
		}
		present = true
		if canInt {
			_, err := strconv.ParseInt(s, 10, 64)
			canInt = err == nil
		}
		if canNum {
			_, err := strconv.ParseFloat(s, 64)
			canNum = err == nil
		}
		if canBool {
			lc := strings.ToLower(s)
			canBool = lc == "true" || lc == "false"
		}
		if !canInt && !canNum && !canBool {
			return table.KindString
		}
	}
	switch {
	case !present:
		return table.KindString
	case canInt:
		return table.KindInt
	case canNum:
		return table.KindNumber
	case canBool:
		return table.KindBool
	default:
		return table.KindString
	}
}

// buildColumn parses the raw cells under the chosen kind.
func buildColumn(name string, kind table.Kind, cells []string, absent []bool) (*table.Column, error) {
	vals := make([]table.Value, len(cells))
	for i, s := range cells {
		if absent[i] {
			vals[i] = table.Absent()
			continue
		}
		v, err := parseCell(s, kind)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		vals[i] = v
	}
	return table.NewColumn(name, kind, vals...)
}

// parseCell converts one raw cell into a value of the given kind.
func parseCell(s string, kind table.Kind) (table.Value, error) {
	switch kind {
	case table.KindInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return table.Value{}, errors.Wrapf(table.ErrConvert, "%q is not an int", s)
		}
		return table.Int(n), nil
	case table.KindNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return table.Value{}, errors.Wrapf(table.ErrConvert, "%q is not a number", s)
		}
		return table.Number(f), nil
	case table.KindBool:
		switch strings.ToLower(s) {
		case "true":
			return table.Bool(true), nil
		case "false":
			return table.Bool(false), nil
		}
		return table.Value{}, errors.Wrapf(table.ErrConvert, "%q is not a bool", s)
	default:
		return table.String(s), nil
	}
}

// snapshot copies every column's cells once, for row-major traversal.
func snapshot(t *table.Table) [][]table.Value {
	vals := make([][]table.Value, t.Width())
	for i := range vals {
		c, _ := t.ColumnAt(i)
		vals[i] = c.Values()
	}
	return vals
}
