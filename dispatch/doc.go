// Package dispatch selects, executes and verifies arithmetic shortcut
// formulas for a pair of dynamic operands.
//
// 🚀 How a call flows:
//
//	Classify → Select → Execute → Verify → Accept | Correct
//
//   - Classify computes every structural feature of the operand pair once
//     (digit counts, base proximity, complementary last digits).
//   - Select picks a formula: multiplication rules compete on confidence
//     (highest admissible wins, first registered wins ties, a minimum
//     threshold forces the direct fallback), division rules sit in a fixed
//     priority list where the first applicable wins.
//   - Execute runs the chosen formula from package sutra.
//   - Verify reconstructs the dividend from quotient and remainder for
//     division shortcuts; multiplication formulas are exact identities on
//     their domain and skip reconstruction.
//   - A failed verification is corrected silently: the direct computation
//     replaces the candidate and the Outcome records Corrected=true. It is
//     never surfaced as an error.
//
// ✨ Key properties:
//   - no package-level state: configuration, logger and statistics belong
//     to the Dispatcher value
//   - hand-tuned rule confidences live in Tuning, overridable in code or
//     from YAML
//   - statistics are atomic counters, safe under concurrent dispatch
//   - a zero divisor aborts with numeric.ErrDivisionByZero; there is no
//     retry loop
//
// ⚙️ Usage:
//
//	d := dispatch.New()
//	out, err := d.Evaluate(dispatch.OpMultiply, numeric.FromInt64(98), numeric.FromInt64(97))
//	// out.Result == 9506, out.Rule == "nikhilam"
//
// See example_test.go for more.
package dispatch
