// Package reshape converts tables between wide and tidy/long layouts and
// splits or rebuilds the compound keys that wide column headers encode.
//
// 🚀 What is reshaping?
//
//	A wide table keeps one row per entity and one column per
//	observation ("country", "1960", "1961"); a tidy/long table keeps one
//	row per observation ("country", "year", "value"). Most downstream
//	tooling wants tidy input, most published data arrives wide, and
//	header strings like "1960_life_expectancy" smuggle two variables
//	into one name. This package is the bridge:
//	  • Longer — wide → long, one row per (entity, variable)
//	  • Wider  — long → wide, one column per key value
//	  • Separate — one compound column → several semantic columns
//	  • Unite    — several columns → one compound column
//
// ✨ Guarantees:
//   - pure value transformations: inputs are never mutated
//   - deterministic ordering: Longer fixes the row loop (outer) and the
//     column loop (inner); Wider emits groups and keys in
//     first-appearance order, so Wider∘Longer round-trips exactly
//   - ambiguity is a typed error (ErrAmbiguousKey), never a silent
//     overwrite; overflow/underflow of Separate is policy-driven
//     (SplitStrict, SplitFillRight, SplitMergeExtra)
//   - coercion only on request: the Convert flags walk an all-or-nothing
//     numeric ladder and quietly stay text when any cell refuses
//
// ⚙️ Usage:
//
//	long, err := reshape.Longer(wide, reshape.LongerOptions{
//	  IDColumns: []string{"country"},
//	  NamesTo:   "year",
//	  ValuesTo:  "fertility",
//	  Convert:   true, // "1960" → int 1960
//	})
//	if err != nil { ... }
//
//	tidy, err := reshape.Separate(long, reshape.SeparateOptions{
//	  Column:    "key",
//	  Into:      []string{"year", "variable"},
//	  Separator: "_",
//	  Policy:    reshape.SplitMergeExtra,
//	})
//
// Performance: every operation is a small constant number of passes,
// O(rows × columns) time and memory.
//
// See example_test.go for runnable scenarios.
package reshape
