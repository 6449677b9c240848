package dispatch_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vedicmath/dispatch"
	"github.com/katalvlaran/vedicmath/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(x int64) numeric.Value { return numeric.FromInt64(x) }

// TestMultiply_RuleSelection verifies that each multiplication rule wins
// on its own pattern and that the reported rule names are stable.
func TestMultiply_RuleSelection(t *testing.T) {
	d := dispatch.New()

	out := d.Multiply(i64(25), i64(25))
	assert.Equal(t, int64(625), out.Result.Int64())
	assert.Equal(t, dispatch.RuleEkadhikena, out.Rule, "square of a five-ending number")
	assert.True(t, out.Verified)

	out = d.Multiply(i64(98), i64(97))
	assert.Equal(t, int64(9506), out.Result.Int64())
	assert.Equal(t, dispatch.RuleNikhilam, out.Rule, "both operands near base 100")

	out = d.Multiply(i64(46), i64(44))
	assert.Equal(t, int64(2024), out.Result.Int64())
	assert.Equal(t, dispatch.RuleAntyayordasake, out.Rule, "complementary last digits")

	out = d.Multiply(i64(102), i64(32))
	assert.Equal(t, int64(3264), out.Result.Int64())
	assert.Equal(t, dispatch.RuleUrdhva, out.Rule, "no special pattern, three digits")

	out = d.Multiply(i64(7), i64(8))
	assert.Equal(t, int64(56), out.Result.Int64())
	assert.Equal(t, dispatch.RuleStandard, out.Rule, "small pair falls back")
}

// TestMultiply_CorrectnessSweep verifies every shortcut against the exact
// product across signs, zeros and pattern boundaries.
func TestMultiply_CorrectnessSweep(t *testing.T) {
	d := dispatch.New()

	pairs := [][2]int64{
		{0, 123}, {123, 0}, {1, 999}, {-1, 999},
		{25, 25}, {-25, 25}, {-25, -25},
		{95, 95}, {98, 97}, {102, 98}, {103, 104}, {997, 996},
		{47, 43}, {46, 44}, {91, 99},
		{123, 456}, {1234, 5678}, {-1234, 5678},
		{102, 32}, {100001, 100001},
	}
	for _, p := range pairs {
		out := d.Multiply(i64(p[0]), i64(p[1]))
		assert.Equal(t, p[0]*p[1], out.Result.Int64(), "%d x %d via %s", p[0], p[1], out.Rule)
		assert.True(t, out.Verified)
		assert.False(t, out.Corrected, "multiplication identities never need correction")
	}
}

// TestMultiply_OverflowFallsBack verifies that operand widths that could
// overflow int64 bypass the shortcut registry and auto-promote.
func TestMultiply_OverflowFallsBack(t *testing.T) {
	d := dispatch.New()

	big := int64(4_000_000_000_000_000_000)
	out := d.Multiply(i64(big), i64(big))
	assert.Equal(t, dispatch.RuleStandard, out.Rule)
	assert.Equal(t, numeric.Float64, out.Result.Kind(), "overflowing product promotes to float64")

	out = d.Multiply(i64(math.MinInt64), i64(3))
	assert.Equal(t, dispatch.RuleStandard, out.Rule, "MinInt64 bypasses classification")
	assert.Equal(t, numeric.Float64, out.Result.Kind())
}

// TestMultiply_PromotionClosure verifies the result kind is never
// narrower than either operand kind, even when the product is small.
func TestMultiply_PromotionClosure(t *testing.T) {
	d := dispatch.New()

	wide := numeric.FromInt64(5_000_000_000) // Int64 kind
	out := d.Multiply(wide, i64(0))
	assert.Equal(t, numeric.Int64, out.Result.Kind())

	out = d.Multiply(numeric.FromFloat64(2.5), i64(4))
	assert.True(t, out.Result.Kind().IsFloat(), "float operand keeps a float result kind")
	assert.InDelta(t, 10.0, out.Result.Float64(), 1e-12)
}

// TestDivide_PriorityList verifies that divisor shape drives method
// selection in the documented order.
func TestDivide_PriorityList(t *testing.T) {
	d := dispatch.New()

	out, err := d.Divide(i64(1234), i64(7))
	require.NoError(t, err)
	assert.Equal(t, dispatch.RuleStandard, out.Rule, "single-digit divisor is trivial")

	out, err = d.Divide(i64(1234), i64(99))
	require.NoError(t, err)
	assert.Equal(t, dispatch.RuleNikhilam, out.Rule)
	assert.Equal(t, int64(12), out.Result.Int64())
	assert.Equal(t, int64(46), out.Remainder.Int64())

	out, err = d.Divide(i64(9_876_543), i64(23))
	require.NoError(t, err)
	assert.Equal(t, dispatch.RuleParavartya, out.Rule, "plain two-digit divisor")

	out, err = d.Divide(i64(98765), i64(312)) // leading 3 dominates 12
	require.NoError(t, err)
	assert.Equal(t, dispatch.RuleDhvajanka, out.Rule)

	out, err = d.Divide(i64(98765), i64(167)) // leading 1, no dominant flag
	require.NoError(t, err)
	assert.Equal(t, dispatch.RuleStandard, out.Rule)

	out, err = d.Divide(i64(50), i64(99))
	require.NoError(t, err)
	assert.Equal(t, dispatch.RuleStandard, out.Rule, "dividend below divisor is trivial")
	assert.Equal(t, int64(0), out.Result.Int64())
	assert.Equal(t, int64(50), out.Remainder.Int64())
}

// TestDivide_SelfCheckInvariant verifies the reconstruction identity for
// every accepted outcome across a mixed sweep.
func TestDivide_SelfCheckInvariant(t *testing.T) {
	d := dispatch.New()

	pairs := [][2]int64{
		{1234, 99}, {1234, 101}, {98765, 999}, {98765, 1001},
		{9876543, 23}, {1234, 23}, {98765, 312}, {987654321, 2345},
		{-1234, 99}, {1234, -99}, {-1234, -99},
		{17, 5}, {5, 17}, {0, 13},
	}
	for _, p := range pairs {
		out, err := d.Divide(i64(p[0]), i64(p[1]))
		require.NoError(t, err)
		q := out.Result.Int64()
		r := out.Remainder.Int64()
		assert.Equal(t, p[0], q*p[1]+r, "%d / %d via %s", p[0], p[1], out.Rule)
		assert.Equal(t, p[0]/p[1], q)
		assert.Equal(t, p[0]%p[1], r)
		assert.True(t, out.Verified)
	}
}

// TestDivide_WideDividends verifies that every shortcut method stays
// exact and settles its corrections arithmetically at the top of the
// int64 range instead of iterating the dividend down.
func TestDivide_WideDividends(t *testing.T) {
	d := dispatch.New()

	cases := []struct {
		dividend, divisor int64
		rule              string
	}{
		{math.MaxInt64, 99, dispatch.RuleNikhilam},
		{math.MaxInt64, 23, dispatch.RuleParavartya},
		{math.MaxInt64, 312, dispatch.RuleDhvajanka},
		{9_000_000_000_000_000_000, 99, dispatch.RuleNikhilam},
		{9_000_000_000_000_000_000, 998, dispatch.RuleNikhilam},
	}
	for _, c := range cases {
		out, err := d.Divide(i64(c.dividend), i64(c.divisor))
		require.NoError(t, err)
		assert.Equal(t, c.rule, out.Rule, "%d / %d", c.dividend, c.divisor)
		assert.Equal(t, c.dividend/c.divisor, out.Result.Int64())
		assert.Equal(t, c.dividend%c.divisor, out.Remainder.Int64())
		assert.True(t, out.Verified)
	}
}

// TestDivide_Int64Boundary pins MinInt64 behavior: its magnitude has no
// int64 representation, so classification routes it to the oracle.
func TestDivide_Int64Boundary(t *testing.T) {
	d := dispatch.New()

	out, err := d.Divide(i64(math.MinInt64), i64(99))
	require.NoError(t, err)
	assert.Equal(t, dispatch.RuleStandard, out.Rule)
	assert.Equal(t, int64(math.MinInt64)/99, out.Result.Int64())
	assert.Equal(t, int64(math.MinInt64)%99, out.Remainder.Int64())
	assert.False(t, out.Corrected)

	// MinInt64 / -1 wraps to MinInt64 under two's complement; the
	// reconstruction identity wraps the same way, so no correction fires.
	out, err = d.Divide(i64(math.MinInt64), i64(-1))
	require.NoError(t, err)
	assert.Equal(t, dispatch.RuleStandard, out.Rule)
	assert.Equal(t, int64(math.MinInt64), out.Result.Int64())
	assert.Equal(t, int64(0), out.Remainder.Int64())
	assert.False(t, out.Corrected)
}

// TestDivide_ZeroDivisor verifies the explicit error contract.
func TestDivide_ZeroDivisor(t *testing.T) {
	d := dispatch.New()

	_, err := d.Divide(i64(5), i64(0))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)

	_, err = d.Modulo(i64(5), i64(0))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)

	_, err = d.Divide(numeric.FromFloat64(1.5), numeric.FromFloat64(0))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

// TestEvaluate_AllOps verifies the operation switch end to end.
func TestEvaluate_AllOps(t *testing.T) {
	d := dispatch.New()

	out, err := d.Evaluate(dispatch.OpAdd, i64(40), i64(2))
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.Result.Int64())

	out, err = d.Evaluate(dispatch.OpSubtract, i64(40), i64(2))
	require.NoError(t, err)
	assert.Equal(t, int64(38), out.Result.Int64())

	out, err = d.Evaluate(dispatch.OpMultiply, i64(25), i64(25))
	require.NoError(t, err)
	assert.Equal(t, int64(625), out.Result.Int64())

	out, err = d.Evaluate(dispatch.OpDivide, i64(1234), i64(99))
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.Result.Int64())

	out, err = d.Evaluate(dispatch.OpModulo, i64(1234), i64(99))
	require.NoError(t, err)
	assert.Equal(t, int64(46), out.Result.Int64())

	out, err = d.Evaluate(dispatch.OpPower, i64(2), i64(10))
	require.NoError(t, err)
	assert.Equal(t, int64(1024), out.Result.Int64())

	out, err = d.Evaluate(dispatch.OpPower, i64(2), i64(-1))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, out.Result.Float64(), 1e-12)

	_, err = d.Evaluate(dispatch.Op(99), i64(1), i64(1))
	assert.ErrorIs(t, err, dispatch.ErrUnknownOp)
}

// TestEvaluate_Idempotence verifies that identical inputs produce an
// identical result and rule name on repeat calls.
func TestEvaluate_Idempotence(t *testing.T) {
	d := dispatch.New()

	first, err := d.Evaluate(dispatch.OpMultiply, i64(98), i64(97))
	require.NoError(t, err)
	second, err := d.Evaluate(dispatch.OpMultiply, i64(98), i64(97))
	require.NoError(t, err)

	assert.Equal(t, first.Result, second.Result)
	assert.Equal(t, first.Rule, second.Rule)
	assert.Equal(t, first.Confidence, second.Confidence)
}

// TestTuning_ThresholdForcesFallback verifies that raising the minimum
// confidence past every rule disables the shortcut registry.
func TestTuning_ThresholdForcesFallback(t *testing.T) {
	tuning := dispatch.DefaultTuning()
	tuning.MinConfidence = 0.99
	d := dispatch.New(dispatch.WithTuning(tuning))

	out := d.Multiply(i64(25), i64(25))
	assert.Equal(t, int64(625), out.Result.Int64(), "result stays correct")
	assert.Equal(t, dispatch.RuleStandard, out.Rule, "threshold overrides the winner")
}

// TestTuningFromYAML verifies profile decoding and default retention.
func TestTuningFromYAML(t *testing.T) {
	tuning, err := dispatch.TuningFromYAML([]byte("min_confidence: 0.5\nsquare_confidence: 0.9\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, tuning.MinConfidence)
	assert.Equal(t, 0.9, tuning.SquareConfidence)
	assert.Equal(t, dispatch.DefaultComplementaryConfidence, tuning.ComplementaryConfidence,
		"absent fields keep their defaults")

	_, err = dispatch.TuningFromYAML([]byte("min_confidence: ["))
	assert.Error(t, err)
}

// TestStats_Counters verifies shortcut/fallback accounting.
func TestStats_Counters(t *testing.T) {
	d := dispatch.New()

	d.Multiply(i64(25), i64(25)) // shortcut
	d.Multiply(i64(7), i64(8))   // fallback
	if _, err := d.Divide(i64(1234), i64(99)); err != nil {
		t.Fatal(err)
	}

	snap := d.Stats()
	assert.Equal(t, uint64(3), snap.Evaluations)
	assert.Equal(t, uint64(2), snap.Shortcuts)
	assert.Equal(t, uint64(1), snap.Fallbacks)
	assert.Equal(t, uint64(0), snap.Corrections)
}
