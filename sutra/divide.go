package sutra

import "errors"

// Division formulas. Every method returns (quotient, remainder, error)
// under the truncating-division identity
//
//	quotient*divisor + remainder == dividend
//
// with the remainder carrying the sign of the dividend, matching native
// integer division. Each method verifies its own result against that
// identity and recomputes directly on mismatch, so a structurally
// inapplicable input degrades to the oracle instead of a wrong answer.

// ErrZeroDivisor indicates a division or modulo with a zero divisor.
var ErrZeroDivisor = errors.New("sutra: zero divisor")

// DivideDirect is the trusted oracle: native truncating integer division.
func DivideDirect(dividend, divisor int64) (int64, int64, error) {
	if divisor == 0 {
		return 0, 0, ErrZeroDivisor
	}

	return dividend / divisor, dividend % divisor, nil
}

// DivideNearBase divides by a divisor close to a power of ten using the
// divisor's complement to that base.
//
// Description:
//
//	With base B near the divisor and complement c = |B − divisor|, a first
//	estimate divides by B, then the quotient-scaled complement corrects
//	the remainder. 1234 ÷ 99 → base 100, c = 1: estimate 12 R 34,
//	correction +12 → 12 R 46.
//
// Divisors not within 10% of a power of ten divide directly.
//
// Errors: ErrZeroDivisor for a zero divisor.
func DivideNearBase(dividend, divisor int64) (int64, int64, error) {
	if divisor == 0 {
		return 0, 0, ErrZeroDivisor
	}
	if divisor == 1 {
		return dividend, 0, nil
	}

	ad, av, signQ, signR := splitSigns(dividend, divisor)
	if ad < av {
		return 0, dividend, nil
	}

	base := NearestPowerOfTen(av)
	if !IsCloseToBase(av, base) {
		return signQ * (ad / av), signR * (ad % av), nil
	}

	baseQuotient := ad / base
	baseRemainder := ad % base

	quotient := baseQuotient
	var remainder int64
	if av < base {
		// Divisor below the base: each base-quotient unit undershoots by
		// the complement, so the correction adds to the remainder.
		remainder = baseRemainder + baseQuotient*(base-av)
	} else {
		// Divisor above the base: the estimate overshoots, so the
		// correction subtracts and can push the remainder negative.
		remainder = baseRemainder - baseQuotient*(av-base)
	}

	// Settle the accumulated correction in one step: a surplus folds into
	// the quotient, a deficit borrows back from it.
	if remainder < 0 {
		borrow := (-remainder + av - 1) / av
		quotient -= borrow
		remainder += borrow * av
	} else if remainder >= av {
		quotient += remainder / av
		remainder %= av
	}

	if remainder < 0 || quotient*av+remainder != ad {
		quotient = ad / av
		remainder = ad % av
	}

	return signQ * quotient, signR * remainder, nil
}

// DivideTranspose divides by a two-digit divisor processing the dividend
// digit by digit, carrying each partial remainder into the next column.
//
// Small operands (dividend at most five digits) and divisors outside the
// two-digit range divide directly.
//
// Errors: ErrZeroDivisor for a zero divisor.
func DivideTranspose(dividend, divisor int64) (int64, int64, error) {
	if divisor == 0 {
		return 0, 0, ErrZeroDivisor
	}
	if divisor == 1 {
		return dividend, 0, nil
	}
	if divisor == -1 {
		return -dividend, 0, nil
	}

	ad, av, signQ, signR := splitSigns(dividend, divisor)
	if ad < av {
		return 0, dividend, nil
	}
	if av < 10 || DigitCount(av) > 2 || DigitCount(ad) <= 5 {
		return signQ * (ad / av), signR * (ad % av), nil
	}

	// Left-to-right column division: bring down one digit at a time and
	// peel the divisor out of the running partial.
	digits := extractDigits(ad)
	var quotient, partial int64
	for i := len(digits) - 1; i >= 0; i-- {
		partial = partial*10 + digits[i]
		var digit int64
		for partial >= av {
			partial -= av
			digit++
		}
		quotient = quotient*10 + digit
	}

	return signQ * quotient, signR * partial, nil
}

// DivideFlagDigit divides using the leading digit(s) of the divisor as a
// "flag": a first pass divides by flag·10^k, then corrections account for
// the trailing digits.
//
// Description:
//
//	1234 ÷ 23 → flag divisor 20, trailing part 3: estimate 61 R 14, each
//	quotient unit owes 3 more; the debt settles against the full divisor
//	in a single borrow step.
//
// Works best when the leading digit(s) dominate the trailing part; any
// input where the corrections fail verification divides directly.
//
// Errors: ErrZeroDivisor for a zero divisor.
func DivideFlagDigit(dividend, divisor int64) (int64, int64, error) {
	if divisor == 0 {
		return 0, 0, ErrZeroDivisor
	}
	if divisor == 1 {
		return dividend, 0, nil
	}

	ad, av, signQ, signR := splitSigns(dividend, divisor)
	if ad < av {
		return 0, dividend, nil
	}
	if av < 10 {
		return signQ * (ad / av), signR * (ad % av), nil
	}

	power := int64(1)
	for i := 1; i < DigitCount(av); i++ {
		power *= 10
	}
	flagDivisor := (av / power) * power
	trailing := av % power

	// Each quotient unit was computed against flagDivisor, which is short
	// of the real divisor by the trailing part; the remainder owes that
	// debt per unit. Settle it in one step: a deficit borrows back from
	// the quotient, a surplus folds into it.
	quotient := ad / flagDivisor
	remainder := ad%flagDivisor - quotient*trailing
	if remainder < 0 {
		borrow := (-remainder + av - 1) / av
		quotient -= borrow
		remainder += borrow * av
	} else if remainder >= av {
		quotient += remainder / av
		remainder %= av
	}

	if remainder < 0 || quotient*av+remainder != ad {
		quotient = ad / av
		remainder = ad % av
	}

	return signQ * quotient, signR * remainder, nil
}

// splitSigns strips signs from dividend and divisor and returns the sign
// multipliers for quotient and remainder under truncating division.
func splitSigns(dividend, divisor int64) (ad, av, signQ, signR int64) {
	ad, av, signQ, signR = dividend, divisor, 1, 1
	if ad < 0 {
		ad = -ad
		signQ = -signQ
		signR = -1
	}
	if av < 0 {
		av = -av
		signQ = -signQ
	}

	return ad, av, signQ, signR
}
