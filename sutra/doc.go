// Package sutra implements the classification predicates and the pure
// shortcut formulas of Vedic-style mental arithmetic.
//
// What lives here:
//
//   - Predicates — deterministic, side-effect-free structural tests over
//     plain integers (digit count, proximity to a power of ten, last digits
//     summing to ten, shared prefix). They only classify; they never
//     compute a product or quotient themselves.
//
//   - Multiplication formulas — exact integer identities that apply when a
//     structural pattern holds: squaring numbers ending in 5, products of
//     numbers with complementary last digits, products of numbers near a
//     common power of ten, the general vertically-and-crosswise method,
//     multiplication by runs of nines, and squaring near a base.
//
//   - Division formulas — quotient/remainder methods keyed to divisor
//     shape: the direct truncating oracle, complement-based division for
//     divisors near a power of ten, transpose-and-adjust for two-digit
//     divisors, and flag-digit decomposition for divisors with a dominant
//     leading digit.
//
// Every formula checks its own applicability on the exact inputs it
// receives and falls back to the direct computation when the pattern does
// not hold, so a caller can never obtain a wrong answer by picking the
// wrong formula. Division formulas return an explicit error for a zero
// divisor; no sentinel values.
//
// The rule-based selection between these formulas lives in package
// dispatch; this package stays pure and allocation-light so it can be
// called from any dispatch path without coordination.
package sutra
