package numeric

import (
	"math"
	"strconv"
)

// Value is an immutable tagged numeric record. The zero Value is Invalid.
//
// Value is a plain comparable struct: two Values constructed from the same
// input are equal under ==, which the expression cache and tests rely on.
// Integer kinds keep their payload in the integer slot, float kinds in the
// float slot; the unused slot stays zero so == equality is well defined.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Kind returns the representation kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a usable number.
func (v Value) IsValid() bool { return v.kind != Invalid }

// FromInt32 wraps a 32-bit integer. Int32 is already the narrowest integer
// kind, so no narrowing applies.
func FromInt32(x int32) Value {
	return Value{kind: Int32, i: int64(x)}
}

// FromInt64 wraps a 64-bit integer, narrowing to Int32 when x fits.
func FromInt64(x int64) Value {
	if x >= math.MinInt32 && x <= math.MaxInt32 {
		return Value{kind: Int32, i: x}
	}

	return Value{kind: Int64, i: x}
}

// FromFloat32 wraps a single-precision float. A whole-valued float within
// integer range narrows to an integer kind; NaN and ±Inf stay Float32.
func FromFloat32(x float32) Value {
	return narrowFloat(float64(x), Float32)
}

// FromFloat64 wraps a double-precision float. A whole-valued float within
// integer range narrows to an integer kind; otherwise, if the value survives
// a round trip through float32 unchanged, it narrows to Float32.
func FromFloat64(x float64) Value {
	return narrowFloat(x, Float64)
}

// narrowFloat implements the shared narrowing policy of the float
// constructors. floatKind is the widest kind the result may keep.
func narrowFloat(x float64, floatKind Kind) Value {
	if !math.IsNaN(x) && !math.IsInf(x, 0) && x == math.Trunc(x) {
		// Whole number: prefer an integer kind when the magnitude fits.
		// The int64 boundary check uses float64(MaxInt64) carefully: values
		// at or beyond 2^63 are out of range.
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return Value{kind: Int32, i: int64(x)}
		}
		if x >= math.MinInt64 && x < float64(math.MaxInt64) {
			return Value{kind: Int64, i: int64(x)}
		}
	}
	if floatKind == Float64 && float64(float32(x)) == x {
		floatKind = Float32
	}
	if floatKind == Float32 {
		x = float64(float32(x))
	}

	return Value{kind: floatKind, f: x}
}

// Int32 returns v as an int32, clamping out-of-range values to the int32
// min/max. Float payloads truncate toward zero before clamping.
func (v Value) Int32() int32 {
	switch v.kind {
	case Int32:
		return int32(v.i)
	case Int64:
		if v.i < math.MinInt32 {
			return math.MinInt32
		}
		if v.i > math.MaxInt32 {
			return math.MaxInt32
		}

		return int32(v.i)
	case Float32, Float64:
		if math.IsNaN(v.f) {
			return 0
		}
		if v.f < math.MinInt32 {
			return math.MinInt32
		}
		if v.f > math.MaxInt32 {
			return math.MaxInt32
		}

		return int32(v.f)
	default:
		return 0
	}
}

// Int64 returns v as an int64, clamping out-of-range float payloads to the
// int64 min/max. NaN converts to 0.
func (v Value) Int64() int64 {
	switch v.kind {
	case Int32, Int64:
		return v.i
	case Float32, Float64:
		if math.IsNaN(v.f) {
			return 0
		}
		if v.f < math.MinInt64 {
			return math.MinInt64
		}
		if v.f >= float64(math.MaxInt64) {
			return math.MaxInt64
		}

		return int64(v.f)
	default:
		return 0
	}
}

// Float32 returns v as a float32. NaN and ±Inf propagate unchanged.
func (v Value) Float32() float32 {
	switch v.kind {
	case Int32, Int64:
		return float32(v.i)
	case Float32, Float64:
		return float32(v.f)
	default:
		return 0
	}
}

// Float64 returns v as a float64. NaN and ±Inf propagate unchanged.
func (v Value) Float64() float64 {
	switch v.kind {
	case Int32, Int64:
		return float64(v.i)
	case Float32, Float64:
		return v.f
	default:
		return 0
	}
}

// IsZero reports whether v holds a numerically zero payload.
// An Invalid value is treated as zero-like for divisor checks.
func (v Value) IsZero() bool {
	switch v.kind {
	case Int32, Int64:
		return v.i == 0
	case Float32, Float64:
		return v.f == 0
	default:
		return true
	}
}

// Widen retags v to kind k when k is wider than v's current kind, without
// changing the numeric payload. It lets dispatcher paths honor the promotion
// rule (the result kind of a binary operation is never narrower than either
// operand) even when the raw computation produced a small integer.
// Narrower or Invalid k leaves v unchanged.
func (v Value) Widen(k Kind) Value {
	if promotionRank(k) <= promotionRank(v.kind) {
		return v
	}
	switch k {
	case Int64:
		return Value{kind: Int64, i: v.i}
	case Float32:
		return Value{kind: Float32, f: float64(v.Float32())}
	case Float64:
		return Value{kind: Float64, f: v.Float64()}
	default:
		return v
	}
}

// String renders v for diagnostics: integers in base 10, floats in the
// shortest representation that round-trips, Invalid as "invalid".
func (v Value) String() string {
	switch v.kind {
	case Int32, Int64:
		return strconv.FormatInt(v.i, 10)
	case Float32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return "invalid"
	}
}
