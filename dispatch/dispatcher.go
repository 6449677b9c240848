package dispatch

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/vedicmath/numeric"
)

// Dispatcher routes binary operations to shortcut formulas or the direct
// baseline. A Dispatcher is immutable after construction and safe for
// concurrent use; its statistics update atomically.
type Dispatcher struct {
	tuning Tuning
	log    *zap.Logger
	stats  *Stats
}

// New constructs a Dispatcher with the default tuning and a no-op logger.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		tuning: DefaultTuning(),
		log:    zap.NewNop(),
		stats:  &Stats{},
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Tuning returns the active confidence profile.
func (d *Dispatcher) Tuning() Tuning { return d.tuning }

// Stats returns a snapshot of the cumulative dispatch counters.
func (d *Dispatcher) Stats() Snapshot { return d.stats.Snapshot() }

// Evaluate dispatches one binary operation over two dynamic operands.
//
// The result kind follows the promotion order (never narrower than either
// operand). Division and modulo return numeric.ErrDivisionByZero for a
// zero divisor; an undefined Op returns ErrUnknownOp.
func (d *Dispatcher) Evaluate(op Op, a, b numeric.Value) (Outcome, error) {
	switch op {
	case OpAdd:
		return d.baseline(numeric.Add(a, b)), nil
	case OpSubtract:
		return d.baseline(numeric.Sub(a, b)), nil
	case OpMultiply:
		return d.Multiply(a, b), nil
	case OpDivide:
		return d.Divide(a, b)
	case OpModulo:
		return d.Modulo(a, b)
	case OpPower:
		return d.Power(a, b), nil
	default:
		return Outcome{}, ErrUnknownOp
	}
}

// Modulo returns the remainder of truncating division, reusing the
// division rule pipeline so shortcut methods serve modulo as well. Float
// operands truncate to integers first.
func (d *Dispatcher) Modulo(a, b numeric.Value) (Outcome, error) {
	if a.Kind().IsFloat() {
		a = numeric.FromInt64(a.Int64())
	}
	if b.Kind().IsFloat() {
		b = numeric.FromInt64(b.Int64())
	}

	out, err := d.Divide(a, b)
	if err != nil {
		return Outcome{}, err
	}
	out.Result = out.Remainder

	return out, nil
}

// Power computes a ** b. A non-negative integer exponent over an integer
// base uses exponentiation by squaring with the usual overflow promotion;
// everything else goes through float64.
func (d *Dispatcher) Power(a, b numeric.Value) Outcome {
	kind := numeric.ResultKind(a.Kind(), b.Kind())

	if a.Kind().IsInteger() && b.Kind().IsInteger() && b.Int64() >= 0 {
		result := numeric.FromInt64(1)
		base := a
		for e := b.Int64(); e > 0; e >>= 1 {
			if e&1 == 1 {
				result = numeric.Mul(result, base)
			}
			if e > 1 {
				base = numeric.Mul(base, base)
			}
		}

		return d.baseline(result.Widen(kind))
	}

	f := math.Pow(a.Float64(), b.Float64())

	return d.baseline(numeric.FromFloat64(f).Widen(kind))
}

// baseline wraps a directly computed result in a trusted Outcome.
func (d *Dispatcher) baseline(v numeric.Value) Outcome {
	d.stats.recordRule(RuleStandard)

	return Outcome{
		Result:     v,
		Rule:       RuleStandard,
		Confidence: 1.0,
		Verified:   true,
	}
}
