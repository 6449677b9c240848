package dispatch

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/vedicmath/numeric"
	"github.com/katalvlaran/vedicmath/sutra"
)

// maxShortcutDigits bounds the combined operand width for integer
// shortcut formulas: past it the int64 product could overflow, so the
// dispatcher hands the pair to the auto-promoting baseline instead.
const maxShortcutDigits = 18

// mulFeatures is the classification of one multiplication pair, computed
// once per call so no rule re-derives a predicate.
type mulFeatures struct {
	a, b             int64 // magnitudes, signs stripped
	digitsA, digitsB int
	squareOfFive     bool
	complementary    bool
	nearBase         bool
	base             int64
	proximity        float64 // mean closeness to base, 1.0 at the base itself
}

// mulRule is one entry of the multiplication registry: an applicability
// test over precomputed features, a tunable confidence, and an executor.
type mulRule struct {
	name       string
	applies    func(f mulFeatures) bool
	confidence func(f mulFeatures, t Tuning) float64
	exec       func(f mulFeatures) int64
}

// mulRules is the fixed registry, in registration order. Selection keeps
// the highest-confidence applicable rule; on equal confidence the earlier
// entry wins.
var mulRules = []mulRule{
	{
		name:       RuleEkadhikena,
		applies:    func(f mulFeatures) bool { return f.squareOfFive },
		confidence: func(_ mulFeatures, t Tuning) float64 { return t.SquareConfidence },
		exec:       func(f mulFeatures) int64 { return sutra.SquareEndingInFive(f.a) },
	},
	{
		name:       RuleAntyayordasake,
		applies:    func(f mulFeatures) bool { return f.complementary },
		confidence: func(_ mulFeatures, t Tuning) float64 { return t.ComplementaryConfidence },
		exec:       func(f mulFeatures) int64 { return sutra.MultiplyComplementary(f.a, f.b) },
	},
	{
		name:    RuleNikhilam,
		applies: func(f mulFeatures) bool { return f.nearBase },
		confidence: func(f mulFeatures, t Tuning) float64 {
			return f.proximity * t.NearBaseMaxConfidence
		},
		exec: func(f mulFeatures) int64 { return sutra.MultiplyNearBase(f.a, f.b) },
	},
	{
		name: RuleUrdhva,
		applies: func(f mulFeatures) bool {
			return f.digitsA >= 3 || f.digitsB >= 3
		},
		confidence: func(f mulFeatures, t Tuning) float64 {
			extra := max(f.digitsA, f.digitsB) - 3
			c := t.CrosswiseBaseConfidence + t.CrosswisePerDigit*float64(extra)
			if c > t.CrosswiseMaxConfidence {
				c = t.CrosswiseMaxConfidence
			}

			return c
		},
		exec: func(f mulFeatures) int64 { return sutra.MultiplyCrosswise(f.a, f.b) },
	},
}

// classifyMul computes every multiplication predicate for a magnitude
// pair in one pass.
func classifyMul(a, b int64) mulFeatures {
	f := mulFeatures{
		a:       a,
		b:       b,
		digitsA: sutra.DigitCount(a),
		digitsB: sutra.DigitCount(b),
	}
	f.squareOfFive = a == b && a%10 == 5 && a > 0
	f.complementary = sutra.LastDigitsSumToTen(a, b) && sutra.SamePrefix(a, b)

	baseA := sutra.NearestPowerOfTen(a)
	baseB := sutra.NearestPowerOfTen(b)
	if baseA == baseB && sutra.IsCloseToBase(a, baseA) && sutra.IsCloseToBase(b, baseA) {
		f.nearBase = true
		f.base = baseA
		devA := float64(absDelta(a, baseA)) / float64(baseA)
		devB := float64(absDelta(b, baseA)) / float64(baseA)
		f.proximity = 1 - (devA+devB)/2
	}

	return f
}

// Multiply dispatches one multiplication: classify the pair, pick the
// highest-confidence applicable rule, execute it, and fall back to the
// direct product when no rule clears the confidence threshold or the
// operands are unsuited to integer shortcuts (floats, zeros, units, or
// widths that could overflow).
func (d *Dispatcher) Multiply(a, b numeric.Value) Outcome {
	if a.Kind().IsFloat() || b.Kind().IsFloat() {
		return d.baseline(numeric.Mul(a, b))
	}

	x, y := a.Int64(), b.Int64()
	if x == 0 || y == 0 || x == 1 || y == 1 {
		return d.baseline(numeric.Mul(a, b))
	}
	// MinInt64 has no positive counterpart to classify.
	if x == math.MinInt64 || y == math.MinInt64 {
		return d.baseline(numeric.Mul(a, b))
	}

	// Strip signs for classification; shortcut formulas work on
	// magnitudes and the sign is reapplied to the product.
	sign := int64(1)
	if x < 0 {
		x, sign = -x, -sign
	}
	if y < 0 {
		y, sign = -y, -sign
	}

	f := classifyMul(x, y)
	if f.digitsA+f.digitsB > maxShortcutDigits {
		return d.baseline(numeric.Mul(a, b))
	}

	var winner *mulRule
	best := 0.0
	for i := range mulRules {
		r := &mulRules[i]
		if !r.applies(f) {
			continue
		}
		if c := r.confidence(f, d.tuning); c > best {
			best = c
			winner = r
		}
	}
	if winner == nil || best < d.tuning.MinConfidence {
		return d.baseline(numeric.Mul(a, b))
	}

	product := sign * winner.exec(f)
	d.stats.recordRule(winner.name)
	d.log.Debug("multiplication shortcut",
		zap.String("rule", winner.name),
		zap.Float64("confidence", best))

	return Outcome{
		Result:     numeric.FromInt64(product).Widen(numeric.ResultKind(a.Kind(), b.Kind())),
		Rule:       winner.name,
		Confidence: best,
		Verified:   true,
	}
}

// absDelta returns |n - base|.
func absDelta(n, base int64) int64 {
	if n >= base {
		return n - base
	}

	return base - n
}
