// SPDX-License-Identifier: MIT

// Package table implements the core tabular data model: an ordered
// collection of uniquely named, kinded columns sharing one row count,
// with an explicit absent marker for missing data.
//
// Design rules, enforced everywhere:
//
//   - Validated construction: New checks name uniqueness and length
//     agreement; NewColumn checks cell kinds. No operation can observe a
//     malformed table.
//   - Immutability: every verb (Select, Drop, Rename, Filter, Sort,
//     Distinct, Head, Concat, Convert, Aggregate) returns a new Table and
//     never mutates its inputs. Columns are immutable and structurally
//     shared between derived tables; Clone produces a fully independent
//     copy when sharing is unwanted.
//   - Explicit coercion: cell kinds never change implicitly. Convert is
//     the single, opt-in coercion point and fails rather than guess.
//   - Typed failures: operations return package sentinels (ErrColumnNotFound,
//     ErrSchemaMismatch, ...) matched with errors.Is; nothing here logs,
//     prints or panics on user input.
//
// Row order is preserved by every operation but only matters for display;
// the reshape, join and setops packages treat rows as tuples. EncodeKey is
// the shared injective tuple encoding those packages build their hash maps
// on.
package table
