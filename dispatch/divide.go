package dispatch

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/vedicmath/numeric"
	"github.com/katalvlaran/vedicmath/sutra"
)

// Division rule gates. Unlike multiplication, division rules sit in a
// fixed priority list and the first applicable one wins; rules 2-4 must
// pass reconstruction before their result is accepted.
const (
	// divNearBaseRatioLow/High bound the divisor-to-base ratio for the
	// near-base method, tighter below and looser above than the generic
	// closeness predicate.
	divNearBaseRatioLow  = 0.85
	divNearBaseRatioHigh = 1.15

	// divNearBaseMaxBase caps the bases eligible for near-base division.
	divNearBaseMaxBase = 10000

	// divTransposeAvoidLow/High exclude two-digit divisors that the
	// near-base method already covers.
	divTransposeAvoidLow  = 95
	divTransposeAvoidHigh = 105
)

// divMethod executes one division shortcut over magnitudes-or-signed
// int64 operands, returning quotient and remainder.
type divMethod func(dividend, divisor int64) (int64, int64, error)

// Divide dispatches one division: walk the priority list, execute the
// first applicable method, verify the reconstruction identity
// quotient·divisor + remainder == dividend, and silently correct to the
// direct oracle on mismatch (Outcome.Corrected reports it).
//
// The quotient is returned in Outcome.Result, the remainder in
// Outcome.Remainder. Float operands divide per IEEE with no remainder.
//
// Errors: numeric.ErrDivisionByZero for a zero divisor.
func (d *Dispatcher) Divide(a, b numeric.Value) (Outcome, error) {
	if b.IsZero() {
		return Outcome{}, numeric.ErrDivisionByZero
	}
	if a.Kind().IsFloat() || b.Kind().IsFloat() {
		q, err := numeric.Div(a, b)
		if err != nil {
			return Outcome{}, err
		}

		return d.baseline(q), nil
	}

	dividend, divisor := a.Int64(), b.Int64()
	rule, method := selectDivRule(dividend, divisor)

	quotient, remainder, err := method(dividend, divisor)
	if err != nil {
		// A method refusing its input counts as a failed attempt; the
		// oracle settles it.
		quotient, remainder, _ = sutra.DivideDirect(dividend, divisor)
		rule = RuleStandard
	}

	out := Outcome{
		Rule:       rule,
		Confidence: 1.0,
		Verified:   true,
	}
	if quotient*divisor+remainder != dividend {
		quotient, remainder, _ = sutra.DivideDirect(dividend, divisor)
		out.Rule = RuleStandard
		out.Corrected = true
		d.stats.corrections.Add(1)
		d.log.Debug("division verification failed, corrected",
			zap.String("rule", rule),
			zap.Int64("dividend", dividend),
			zap.Int64("divisor", divisor))
	}
	d.stats.recordRule(out.Rule)

	kind := numeric.ResultKind(a.Kind(), b.Kind())
	out.Result = numeric.FromInt64(quotient).Widen(kind)
	out.Remainder = numeric.FromInt64(remainder)

	return out, nil
}

// selectDivRule walks the fixed priority list for a divisor shape.
func selectDivRule(dividend, divisor int64) (string, divMethod) {
	av := divisor
	if av < 0 {
		av = -av
	}
	ad := dividend
	if ad < 0 {
		// MinInt64 stays negative here and lands in the trivial branch.
		ad = -ad
	}

	// Priority 1: trivial shapes go straight to the oracle.
	if av <= 10 || ad < av {
		return RuleStandard, sutra.DivideDirect
	}

	// Priority 2: divisor hugging a small power of ten.
	base := sutra.NearestPowerOfTen(av)
	ratio := float64(av) / float64(base)
	if ratio >= divNearBaseRatioLow && ratio <= divNearBaseRatioHigh &&
		base >= 10 && base <= divNearBaseMaxBase &&
		absDelta(av, base) <= base/10 {
		return RuleNikhilam, sutra.DivideNearBase
	}

	digits := sutra.DigitCount(av)

	// Priority 3: plain two-digit divisors, leaving the near-power band
	// to rule 2.
	if digits == 2 && (av < divTransposeAvoidLow || av > divTransposeAvoidHigh) {
		return RuleParavartya, sutra.DivideTranspose
	}

	// Priority 4: divisors whose leading digit(s) dominate the rest.
	if dominantLeading(av, digits) {
		return RuleDhvajanka, sutra.DivideFlagDigit
	}

	// Priority 5: everything else.
	return RuleStandard, sutra.DivideDirect
}

// dominantLeading reports whether a 2-4 digit divisor has a leading digit
// pattern strong enough for the flag method.
func dominantLeading(av int64, digits int) bool {
	switch digits {
	case 2:
		return true
	case 3:
		leading := av / 100
		remaining := av % 100

		return leading >= 2 && remaining < leading*50
	case 4:
		leadingTwo := av / 100
		remaining := av % 100

		return leadingTwo >= 10 && remaining < leadingTwo*5
	default:
		return false
	}
}
