package dispatch

import (
	"errors"

	"github.com/katalvlaran/vedicmath/numeric"
)

// ErrUnknownOp indicates an Op value outside the defined operation set.
var ErrUnknownOp = errors.New("dispatch: unknown operation")

// Op identifies a binary arithmetic operation.
type Op uint8

const (
	// OpAdd is addition.
	OpAdd Op = iota

	// OpSubtract is subtraction.
	OpSubtract

	// OpMultiply is multiplication, the confidence-ranked shortcut path.
	OpMultiply

	// OpDivide is truncating division, the priority-list shortcut path.
	OpDivide

	// OpModulo is the remainder of truncating division.
	OpModulo

	// OpPower is exponentiation.
	OpPower
)

// String returns the operation name for diagnostics and logs.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpModulo:
		return "modulo"
	case OpPower:
		return "power"
	default:
		return "unknown"
	}
}

// ParseOp maps an operator symbol to its Op. The second return reports
// whether the symbol is known.
func ParseOp(symbol string) (Op, bool) {
	switch symbol {
	case "+":
		return OpAdd, true
	case "-":
		return OpSubtract, true
	case "*", "x", "×":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	case "%":
		return OpModulo, true
	case "^":
		return OpPower, true
	default:
		return 0, false
	}
}

// Rule names reported in Outcome.Rule. Shortcut rules carry the Sanskrit
// name of the underlying sutra; RuleStandard marks the direct baseline.
const (
	// RuleStandard is the direct, always-correct baseline computation.
	RuleStandard = "standard"

	// RuleEkadhikena squares numbers ending in five.
	RuleEkadhikena = "ekadhikena-purvena"

	// RuleAntyayordasake multiplies shared-prefix complementary-digit pairs.
	RuleAntyayordasake = "antyayordasake"

	// RuleNikhilam is the near-base method, for multiplication and division.
	RuleNikhilam = "nikhilam"

	// RuleUrdhva is general crosswise multiplication.
	RuleUrdhva = "urdhva-tiryagbhyam"

	// RuleParavartya is transpose-and-adjust division.
	RuleParavartya = "paravartya-yojayet"

	// RuleDhvajanka is flag-digit division.
	RuleDhvajanka = "dhvajanka"
)

// Outcome is the result of one dispatched operation.
//
// Invariants:
//   - Verified is true for every returned outcome; a failed division
//     verification is replaced by the direct result before returning.
//   - Corrected is true only when a shortcut's candidate was discarded
//     after failing reconstruction and the baseline recomputed the result.
//   - Remainder is meaningful for OpDivide and OpModulo only.
type Outcome struct {
	// Result is the operation result in the promoted kind.
	Result numeric.Value

	// Remainder accompanies Result for division (Result carries the
	// quotient) and mirrors Result for modulo.
	Remainder numeric.Value

	// Rule names the formula that produced Result.
	Rule string

	// Confidence is the selection confidence of Rule (1.0 for baselines).
	Confidence float64

	// Verified reports that the result passed, or did not need, the
	// reconstruction check.
	Verified bool

	// Corrected reports that a shortcut candidate failed verification and
	// the baseline recomputed the result.
	Corrected bool
}
