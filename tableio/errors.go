package tableio

import "errors"

// Sentinel errors for table input/output. IO paths wrap these with file,
// row and column context; match with errors.Is.
var (
	// ErrEmptyInput indicates a reader that produced no header at all.
	ErrEmptyInput = errors.New("tableio: empty input")
	// ErrHeader indicates a header row with an empty or duplicated name.
	ErrHeader = errors.New("tableio: invalid header")
	// ErrRaggedRow indicates a data row whose field count differs from the header.
	ErrRaggedRow = errors.New("tableio: ragged row")
	// ErrBadDocument indicates a JSON document that does not follow the
	// columns/rows layout or carries a cell outside its declared kind.
	ErrBadDocument = errors.New("tableio: malformed table document")
)
