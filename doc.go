// Package vedicmath is an adaptive arithmetic dispatch engine: a library
// of Vedic-style integer shortcut algorithms and the machinery that picks
// the right one for each operand pair.
//
// 🚀 What is vedicmath?
//
//	A pure-algorithms library that brings together:
//		• Dynamic numbers: a tagged Value over Int32/Int64/Float32/Float64
//		  with narrowing construction and overflow auto-promotion
//		• Shortcut formulas: squaring numbers ending in 5, near-base
//		  products and quotients, complementary-digit products, crosswise
//		  multiplication, flag-digit division
//		• Rule-based dispatch: confidence-ranked selection for
//		  multiplication, a verified priority list for division, and a
//		  direct baseline as the always-correct fallback
//		• Caching: an immutable handler table plus a bounded LRU cache for
//		  repeated textual expressions
//
// ✨ Why choose vedicmath?
//
//   - Correct by construction – every division shortcut is reconstructed
//     against its dividend before the result is accepted
//   - No global state – configuration, logger and statistics travel with
//     the engine value; concurrent use is safe
//   - Observable – rule attribution, correction flags and cache hit rates
//     are part of every outcome and snapshot
//
// Everything is organized under four subpackages:
//
//	numeric/  — the dynamic Value type: kinds, promotion, arithmetic, parsing
//	sutra/    — classification predicates & the pure shortcut formulas
//	dispatch/ — rule registries, the verify-then-fallback selector, tuning
//	engine/   — handler table, expression cache, batch evaluation
//
// Quick example:
//
//	eng := engine.New()
//	out, _ := eng.EvaluateExpression("98 * 97")
//	fmt.Println(out.Result, out.Rule) // 9506 nikhilam
//
// See each subpackage's doc.go and example_test.go for details.
//
//	go get github.com/katalvlaran/vedicmath
package vedicmath
