// SPDX-License-Identifier: MIT
// Package table: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the table
// package and its consumers (reshape, join, setops, tableio). All operations
// MUST return these sentinels and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package table

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "table: ..." for consistency and to allow
// easy grepping across logs. When row/column context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the call site — callers still match with
// errors.Is.

var (
	// ErrNilTable indicates a nil *Table was passed to an operation.
	ErrNilTable = errors.New("table: nil table")
	// ErrEmptyName indicates a column name was empty.
	ErrEmptyName = errors.New("table: column name must be non-empty")
	// ErrDuplicateColumn indicates two columns share one name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")
	// ErrLengthMismatch indicates columns of differing lengths.
	ErrLengthMismatch = errors.New("table: all columns must have the same length")
	// ErrColumnNotFound indicates a requested column name does not exist.
	ErrColumnNotFound = errors.New("table: column not found")
	// ErrTypeMismatch indicates a value (or column) of the wrong kind for an operation.
	ErrTypeMismatch = errors.New("table: kind does not match")
	// ErrSchemaMismatch indicates two tables whose column sets differ where identical sets are required.
	ErrSchemaMismatch = errors.New("table: column sets differ")
	// ErrRowRange indicates a row index outside [0, Len).
	ErrRowRange = errors.New("table: row index out of range")
	// ErrConvert indicates a value that cannot be converted to the requested kind.
	ErrConvert = errors.New("table: cannot convert value to requested kind")
	// ErrUnknownKind indicates a Kind outside the declared enumeration.
	ErrUnknownKind = errors.New("table: unknown kind")
	// ErrNilPredicate indicates a nil filter predicate.
	ErrNilPredicate = errors.New("table: nil filter predicate")
	// ErrUnknownAggregate indicates an AggFn outside the declared enumeration.
	ErrUnknownAggregate = errors.New("table: unknown aggregate function")
)
