package sutra

// Classification predicates. All of them are pure functions over plain
// integers; the dispatcher converts dynamic operands before calling in.
// Predicates classify only; the arithmetic shortcuts live in multiply.go
// and divide.go.

// closeRatioLow and closeRatioHigh bound IsCloseToBase: a number counts as
// close to a base when its ratio to that base lies in [0.9, 1.1].
const (
	closeRatioLow  = 0.9
	closeRatioHigh = 1.1
)

// DigitCount returns the number of decimal digits in n. The sign does not
// count as a digit; DigitCount(0) is 1.
func DigitCount(n int64) int {
	if n == 0 {
		return 1
	}
	if n < 0 {
		n = -n
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}

	return count
}

// NearestPowerOfTen returns the power of ten numerically closest to n,
// preferring the lower power on a tie (the next power is chosen only when
// n strictly exceeds five times the lower power).
//
// Non-positive input defaults to 10. That default is a compatibility quirk,
// not a mathematical statement; callers should not rely on it.
func NearestPowerOfTen(n int64) int64 {
	if n <= 0 {
		return 10
	}

	base := int64(1)
	for i := 1; i < DigitCount(n); i++ {
		base *= 10
	}
	if n > base*5 {
		base *= 10
	}

	return base
}

// IsCloseToBase reports whether n lies within 10% of base.
func IsCloseToBase(n, base int64) bool {
	if base == 0 {
		return false
	}
	ratio := float64(n) / float64(base)

	return ratio >= closeRatioLow && ratio <= closeRatioHigh
}

// LastDigitsSumToTen reports whether the last decimal digits of a and b
// sum to exactly ten.
func LastDigitsSumToTen(a, b int64) bool {
	return a%10+b%10 == 10
}

// SamePrefix reports whether a and b share all digits except the last,
// using integer truncation (so 47 and 43 share prefix 4).
func SamePrefix(a, b int64) bool {
	return a/10 == b/10
}

// Prefix returns all digits of n except the last.
func Prefix(n int64) int64 { return n / 10 }

// LastDigit returns the last decimal digit of n, negative for negative n.
func LastDigit(n int64) int64 { return n % 10 }

// EndsInFive reports whether n ends in the digit 5.
func EndsInFive(n int64) bool { return n%10 == 5 }

// CombineParts concatenates left and right as decimal digit groups, giving
// right exactly rightDigits positions. A right part wider than rightDigits
// carries into left naturally.
//
//	CombineParts(12, 34, 2) == 1234
//	CombineParts(20, 21, 2) == 2021
func CombineParts(left, right int64, rightDigits int) int64 {
	multiplier := int64(1)
	for i := 0; i < rightDigits; i++ {
		multiplier *= 10
	}

	return left*multiplier + right
}
