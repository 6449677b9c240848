package numeric

import "math"

// Binary arithmetic over Values.
//
// Every operation computes in the promoted kind (ResultKind of the two
// operands) and returns a result of that kind. Integer overflow of Int32
// auto-promotes the result to Int64; Int64 overflow auto-promotes to
// Float64, a documented precision-losing fallback at the top of the integer
// lattice. Float64 overflow follows IEEE semantics and may yield ±Inf.
//
// Operations on an Invalid operand return the zero (Invalid) Value.

// Add returns a + b in the promoted kind, auto-promoting on integer
// overflow.
func Add(a, b Value) Value {
	switch k := ResultKind(a.kind, b.kind); k {
	case Int32:
		// int64 intermediate: Int32 addition can never overflow it.
		return intResult(k, a.i+b.i)
	case Int64:
		x, y := a.Int64(), b.Int64()
		if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
			return Value{kind: Float64, f: float64(x) + float64(y)}
		}

		return Value{kind: Int64, i: x + y}
	case Float32:
		return float32Result(a.Float64() + b.Float64())
	case Float64:
		return Value{kind: Float64, f: a.Float64() + b.Float64()}
	default:
		return Value{}
	}
}

// Sub returns a - b in the promoted kind.
func Sub(a, b Value) Value {
	switch k := ResultKind(a.kind, b.kind); k {
	case Int32:
		return intResult(k, a.i-b.i)
	case Int64:
		return Value{kind: Int64, i: a.Int64() - b.Int64()}
	case Float32:
		return float32Result(a.Float64() - b.Float64())
	case Float64:
		return Value{kind: Float64, f: a.Float64() - b.Float64()}
	default:
		return Value{}
	}
}

// Mul returns a * b in the promoted kind, auto-promoting on integer
// overflow (Int32 → Int64 → Float64).
func Mul(a, b Value) Value {
	switch k := ResultKind(a.kind, b.kind); k {
	case Int32:
		// int64 intermediate holds any Int32 product exactly.
		return intResult(k, a.i*b.i)
	case Int64:
		x, y := a.Int64(), b.Int64()
		if mulInt64Overflows(x, y) {
			return Value{kind: Float64, f: float64(x) * float64(y)}
		}

		return Value{kind: Int64, i: x * y}
	case Float32:
		return float32Result(a.Float64() * b.Float64())
	case Float64:
		return Value{kind: Float64, f: a.Float64() * b.Float64()}
	default:
		return Value{}
	}
}

// Div returns a / b in the promoted kind. Integer division truncates toward
// zero. A zero-valued divisor yields ErrDivisionByZero for every kind,
// floats included; it is never mapped to a sentinel ±Inf.
func Div(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	switch k := ResultKind(a.kind, b.kind); k {
	case Int32:
		return intResult(k, a.i/b.i), nil
	case Int64:
		return Value{kind: Int64, i: a.Int64() / b.Int64()}, nil
	case Float32:
		return float32Result(a.Float64() / b.Float64()), nil
	case Float64:
		return Value{kind: Float64, f: a.Float64() / b.Float64()}, nil
	default:
		return Value{}, nil
	}
}

// Mod returns a % b. Modulo is an integer operation: float operands are
// truncated toward zero before the remainder is taken, and the result kind
// is the promoted kind of the truncated operands. A zero-valued divisor
// yields ErrDivisionByZero.
func Mod(a, b Value) (Value, error) {
	if a.kind.IsFloat() {
		a = FromInt64(a.Int64())
	}
	if b.kind.IsFloat() {
		b = FromInt64(b.Int64())
	}
	if b.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	switch k := ResultKind(a.kind, b.kind); k {
	case Int32:
		return intResult(k, a.i%b.i), nil
	case Int64:
		return Value{kind: Int64, i: a.Int64() % b.Int64()}, nil
	default:
		return Value{}, nil
	}
}

// intResult wraps an int64 computation carried out for promoted kind k.
// A result that no longer fits Int32 promotes to Int64.
func intResult(k Kind, x int64) Value {
	if k == Int32 && x >= math.MinInt32 && x <= math.MaxInt32 {
		return Value{kind: Int32, i: x}
	}

	return Value{kind: Int64, i: x}
}

// float32Result rounds a float64 computation to float32 precision while
// keeping the Float32 kind.
func float32Result(x float64) Value {
	return Value{kind: Float32, f: float64(float32(x))}
}

// mulInt64Overflows reports whether a * b overflows int64.
func mulInt64Overflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == -1 {
		return b == math.MinInt64
	}
	if b == -1 {
		return a == math.MinInt64
	}
	p := a * b

	return p/b != a
}
