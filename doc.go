// Package tidytab is your in-memory playground for reshaping, joining,
// and comparing tabular data — from typed columns to relational verbs
// and terminal rendering.
//
// 🚀 What is tidytab?
//
//	A small, explicit library that brings together:
//		• Core primitives: typed columns, immutable tables, absent-aware cells
//		• Reshapes: wide→long (Longer), long→wide (Wider)
//		• Compound keys: Separate (split) & Unite (merge) with mismatch policies
//		• Joins: inner, left, right, full, semi, anti — with key validation
//		• Set operations: Intersect, Union, Difference, Equal on whole rows
//		• I/O: CSV & JSON readers/writers with NA handling and kind inference
//		• Rendering: aligned, kind-annotated terminal output
//
// ✨ Why choose tidytab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – every verb validates up front and returns typed errors
//   - Immutable by construction – verbs return new tables, inputs never change
//   - Composable – every operation takes a *table.Table and returns one
//
// Under the hood, everything is organized under focused subpackages:
//
//	table/   — Column, Table, Value & Kind, plus Select/Filter/Sort/Distinct verbs
//	reshape/ — Longer, Wider, Separate, Unite
//	join/    — the six relational join modes over shared or explicit keys
//	setops/  — row-set algebra with schema checking
//	tableio/ — CSV and JSON round-tripping
//	render/  — fixed-width and styled terminal formatting
//	cmd/     — the tidytab command-line pipeline tool
//
// Quick example, wide to long:
//
//	country  1952  1957          country  year  fertility
//	Germany  2.41  2.27    ──►   Germany  1952       2.41
//	Vietnam  5.65  6.35          Germany  1957       2.27
//	                             Vietnam  1952       5.65
//	                             Vietnam  1957       6.35
//
// Dive into examples/ for full pipelines over census and indicator data.
//
//	go get github.com/katalvlaran/tidytab
package tidytab
