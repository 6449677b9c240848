package sutra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vedicmath/sutra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reconstruct asserts the truncating-division identity for a result.
func reconstruct(t *testing.T, dividend, divisor, q, r int64) {
	t.Helper()
	assert.Equal(t, dividend, q*divisor+r, "%d / %d gave q=%d r=%d", dividend, divisor, q, r)
	assert.Equal(t, dividend/divisor, q)
	assert.Equal(t, dividend%divisor, r)
}

// TestDivideDirect verifies the oracle and its zero-divisor error.
func TestDivideDirect(t *testing.T) {
	q, r, err := sutra.DivideDirect(17, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), q)
	assert.Equal(t, int64(2), r)

	q, r, err = sutra.DivideDirect(-17, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), q, "quotient truncates toward zero")
	assert.Equal(t, int64(-2), r, "remainder keeps dividend sign")

	_, _, err = sutra.DivideDirect(17, 0)
	assert.ErrorIs(t, err, sutra.ErrZeroDivisor)
}

// TestDivideNearBase verifies complement-based division around powers of
// ten, including the above-base borrow and sign handling.
func TestDivideNearBase(t *testing.T) {
	q, r, err := sutra.DivideNearBase(1234, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(12), q)
	assert.Equal(t, int64(46), r)

	cases := [][2]int64{
		{1234, 99},
		{1234, 101},
		{98765, 999},
		{98765, 1001},
		{500, 95},
		{12345, 110},
		{-1234, 99},
		{1234, -99},
		{-1234, -99},
		{7, 99}, // dividend smaller than divisor
		// Top of the int64 range: the correction must settle
		// arithmetically, not by walking the dividend down.
		{math.MaxInt64, 99},
		{math.MaxInt64, 101},
		{9_000_000_000_000_000_000, 998},
	}
	for _, c := range cases {
		q, r, err := sutra.DivideNearBase(c[0], c[1])
		require.NoError(t, err)
		reconstruct(t, c[0], c[1], q, r)
	}

	_, _, err = sutra.DivideNearBase(5, 0)
	assert.ErrorIs(t, err, sutra.ErrZeroDivisor)
}

// TestDivideTranspose verifies column division for two-digit divisors and
// the direct path for small or out-of-range operands.
func TestDivideTranspose(t *testing.T) {
	cases := [][2]int64{
		{1234, 23},
		{987654, 23}, // six digits, exercises the column loop
		{10000000, 73},
		{123456789, 47},
		{-987654, 23},
		{987654, -23},
		{99, 23},
		{1234, 997}, // three-digit divisor, direct path
	}
	for _, c := range cases {
		q, r, err := sutra.DivideTranspose(c[0], c[1])
		require.NoError(t, err)
		reconstruct(t, c[0], c[1], q, r)
	}

	q, r, err := sutra.DivideTranspose(42, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), q)
	assert.Equal(t, int64(0), r)

	q, r, err = sutra.DivideTranspose(42, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), q)
	assert.Equal(t, int64(0), r)

	_, _, err = sutra.DivideTranspose(42, 0)
	assert.ErrorIs(t, err, sutra.ErrZeroDivisor)
}

// TestDivideFlagDigit verifies flag-based division across divisor widths
// and its internal verification fallback.
func TestDivideFlagDigit(t *testing.T) {
	q, r, err := sutra.DivideFlagDigit(1234, 23)
	require.NoError(t, err)
	assert.Equal(t, int64(53), q)
	assert.Equal(t, int64(15), r)

	cases := [][2]int64{
		{1234, 23},
		{98765, 234},
		{987654321, 2345},
		{555555, 312},
		{1000, 999}, // large trailing part maximizes the borrow
		{-1234, 23},
		{1234, -23},
		{9, 23},
		// Top of the int64 range: the borrow must settle arithmetically,
		// not by walking the quotient down.
		{math.MaxInt64, 23},
		{math.MaxInt64, 312},
		{9_000_000_000_000_000_000, 8999},
	}
	for _, c := range cases {
		q, r, err := sutra.DivideFlagDigit(c[0], c[1])
		require.NoError(t, err)
		reconstruct(t, c[0], c[1], q, r)
	}

	_, _, err = sutra.DivideFlagDigit(1, 0)
	assert.ErrorIs(t, err, sutra.ErrZeroDivisor)
}
