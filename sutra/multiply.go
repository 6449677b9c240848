package sutra

// Multiplication and squaring formulas. Each formula is an exact identity
// on its applicable domain and degrades to direct multiplication outside
// it, so callers never need to pre-validate inputs for correctness, only
// for speed.

// SquareEndingInFive squares a number ending in the digit 5.
//
// Description:
//
//	Split n = 10·m + 5. Then n² = m·(m+1) followed by the digits 25:
//	25² → m=2, 2·3=6, append 25 → 625.
//
// A number not ending in 5 squares directly.
func SquareEndingInFive(n int64) int64 {
	if n%10 != 5 {
		return n * n
	}

	prefix := n / 10
	left := prefix * (prefix + 1)

	return left*100 + 25
}

// MultiplyComplementary multiplies two numbers that share a prefix and
// whose last digits sum to ten.
//
// Description:
//
//	For a = 10·m + x and b = 10·m + y with x + y = 10:
//	a·b = m·(m+1) followed by x·y, the right part padded to two digits.
//	47×43 → m=4, 4·5=20, 7·3=21 → 2021.
//
// When the pattern does not hold the product is computed directly.
func MultiplyComplementary(a, b int64) int64 {
	if a%10+b%10 != 10 || a/10 != b/10 {
		return a * b
	}

	prefix := a / 10
	left := prefix * (prefix + 1)
	right := (a % 10) * (b % 10)

	// The right part occupies at least two digit positions (9×1 = 09).
	rightDigits := 2
	if right >= 10 {
		rightDigits = DigitCount(right)
	}

	return CombineParts(left, right, rightDigits)
}

// MultiplyNearBase multiplies two numbers close to a common power of ten
// using base complements.
//
// Description:
//
//	With base B and deficiencies dA = B−a, dB = B−b (negative when the
//	operand exceeds B), the product decomposes into a left part of
//	cross-adjusted operands and a right part of the complement product:
//
//	  both below B:  a·b = (a − dB) ‖ dA·dB         98×97 → 95 ‖ 06 → 9506
//	  both above B:  a·b = (a + eB) ‖ eA·eB        103×104 → 107 ‖ 12 → 10712
//	  one each side: borrow one from the left part and take the right
//	  part as the complement of eA·dB to B.
//
// The pattern requires both operands within 10% of the same base; outside
// it, or for single-digit operands, the product is computed directly.
func MultiplyNearBase(a, b int64) int64 {
	if a < 10 || b < 10 {
		return a * b
	}

	base := bestSharedBase(a, b)
	if !IsCloseToBase(a, base) || !IsCloseToBase(b, base) {
		return a * b
	}

	switch {
	case a < base && b < base:
		return nearBaseBelow(a, b, base)
	case a > base && b > base:
		return nearBaseAbove(a, b, base)
	default:
		return nearBaseMixed(a, b, base)
	}
}

// bestSharedBase picks the power of ten minimizing the combined deviation
// of both operands.
func bestSharedBase(a, b int64) int64 {
	baseA := NearestPowerOfTen(a)
	baseB := NearestPowerOfTen(b)
	if baseA == baseB {
		return baseA
	}

	toA := absInt64(a-baseA) + absInt64(b-baseA)
	toB := absInt64(a-baseB) + absInt64(b-baseB)
	if toA <= toB {
		return baseA
	}

	return baseB
}

func nearBaseBelow(a, b, base int64) int64 {
	defA := base - a
	defB := base - b
	left := a - defB
	right := defA * defB

	return CombineParts(left, right, DigitCount(base)-1)
}

func nearBaseAbove(a, b, base int64) int64 {
	excessA := a - base
	excessB := b - base
	left := a + excessB
	right := excessA * excessB

	return CombineParts(left, right, DigitCount(base)-1)
}

func nearBaseMixed(a, b, base int64) int64 {
	// Normalize so a sits above the base and b below.
	if a < base && b > base {
		a, b = b, a
	}

	excessA := a - base
	defB := base - b
	left := a - defB
	right := excessA * defB

	// One operand above and one below makes the right part negative, so it
	// is taken as a complement with a borrow from the left part.
	power := int64(1)
	baseDigits := DigitCount(base) - 1
	for i := 0; i < baseDigits; i++ {
		power *= 10
	}
	if right >= power {
		// Multi-position borrow; not worth the trick.
		return a * b
	}
	left--

	return CombineParts(left, power-right, baseDigits)
}

// MultiplyCrosswise multiplies two numbers of any magnitude with the
// vertically-and-crosswise digit pattern.
//
// Description:
//
//	Every digit of a is multiplied with every digit of b; partial products
//	accumulate by position (the diagonal sums of the digit grid) and
//	carries propagate right to left. Equivalent to schoolbook long
//	multiplication organized per result column.
//
// Complexity: O(dA·dB) digit operations for dA- and dB-digit operands.
//
// Operands below 10, negative operands, or pairs of at most two digits
// multiply directly.
func MultiplyCrosswise(a, b int64) int64 {
	if a < 10 || b < 10 {
		return a * b
	}

	digitsA := DigitCount(a)
	digitsB := DigitCount(b)
	if digitsA <= 2 && digitsB <= 2 {
		return a * b
	}

	da := extractDigits(a)
	db := extractDigits(b)

	// Column sums, little-endian: column i collects da[j]·db[i-j].
	cols := make([]int64, digitsA+digitsB)
	for i := range da {
		for j := range db {
			cols[i+j] += da[i] * db[j]
		}
	}

	// Carry propagation, then rebuild from the most significant column.
	for i := 0; i < len(cols)-1; i++ {
		cols[i+1] += cols[i] / 10
		cols[i] %= 10
	}

	var result int64
	for i := len(cols) - 1; i >= 0; i-- {
		result = result*10 + cols[i]
	}

	return result
}

// extractDigits returns the decimal digits of n, least significant first.
func extractDigits(n int64) []int64 {
	if n == 0 {
		return []int64{0}
	}
	if n < 0 {
		n = -n
	}
	digits := make([]int64, 0, DigitCount(n))
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}

	return digits
}

// MultiplyByNines multiplies n by a run of nines (9, 99, 999, ...).
//
// Description:
//
//	For a multiplier of k nines (base B = 10^k): n·(B−1) = (n−1) ‖ (B−n),
//	valid while n < B so the complement fits the nine-run width.
//	47×99 → 46 ‖ 53 → 4653.
//
// A multiplier that is not all nines, or an n at or beyond the base
// (47×9, say), multiplies directly.
func MultiplyByNines(n, nines int64) int64 {
	sign := int64(1)
	if n < 0 {
		n = -n
		sign = -1
	}

	base := int64(1)
	for m := nines; m > 0; m /= 10 {
		if m%10 != 9 {
			return sign * n * nines
		}
		base *= 10
	}

	left := n - 1
	right := base - n
	if right <= 0 || DigitCount(right) > DigitCount(base)-1 {
		return sign * n * nines
	}

	return sign * (left*base + right)
}

// SquareNearBase squares a number close to a power of ten using its
// deficiency or excess from the base.
//
// Description:
//
//	With d = base − n: n² = (n − d) ‖ d², the right part sized to the
//	base width. 98² (base 100, d = 2) → 96 ‖ 04 → 9604; 103² → 106 ‖ 09.
//
// The caller chooses the base; NearestPowerOfTen(n) is the natural pick.
func SquareNearBase(n, base int64) int64 {
	// Below the base the left part loses the deficiency, above it gains
	// the excess; both collapse to n - d.
	d := base - n
	left := n - d

	return CombineParts(left, d*d, DigitCount(base)-1)
}

// absInt64 returns |x| without touching math.Abs float conversions.
func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
