package numeric

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts numeric text into a Value, detecting the kind from the
// text itself:
//
//   - a decimal point or exponent marks a floating-point literal; it parses
//     as Float64 when it carries an exponent or more than 7 significant
//     digits, and as Float32 otherwise (narrowing rules of the constructors
//     still apply, so "25.0" comes back as an Int32);
//   - plain integer literals parse as Int32 when they fit, Int64 otherwise;
//   - integer literals beyond int64 range fall back to Float64;
//   - float literals beyond float64 range parse as Float64 ±Inf.
//
// Malformed text yields an ErrParse-wrapped error, never a zero Value
// masquerading as a result.
func Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty input", ErrParse)
	}

	if !strings.ContainsAny(s, ".eE") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return FromInt64(n), nil
		}
		if isRangeError(err) {
			// Out of int64 range: documented precision-losing fallback.
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil {
				return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
			}

			return Value{kind: Float64, f: f}, nil
		}

		return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if isRangeError(err) {
			// Beyond float64 range strconv saturates to ±Inf; that value
			// is the answer at the top of the kind order.
			return Value{kind: Float64, f: f}, nil
		}

		return Value{}, fmt.Errorf("%w: %q", ErrParse, text)
	}
	if strings.ContainsAny(s, "eE") || significantDigits(s) > 7 {
		return FromFloat64(f), nil
	}

	return FromFloat32(float32(f)), nil
}

// isRangeError reports whether err is a strconv out-of-range failure.
func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)

	return ok && ne.Err == strconv.ErrRange
}

// significantDigits counts decimal digits in a literal, ignoring the sign,
// the decimal point and any exponent suffix.
func significantDigits(s string) int {
	count := 0
	for _, r := range s {
		if r == 'e' || r == 'E' {
			break
		}
		if r >= '0' && r <= '9' {
			count++
		}
	}

	return count
}
