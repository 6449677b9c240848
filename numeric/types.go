// Package numeric defines the dynamic Value type used throughout vedicmath:
// a tagged numeric record over Int32, Int64, Float32 and Float64 with
// automatic promotion on overflow and narrowing construction.
//
// Representation rules:
//
//   - Conversion constructors (FromInt32 … FromFloat64, Parse) always store
//     a value in the narrowest kind that can hold it without loss: an int64
//     that fits int32 range becomes Int32, a whole-valued float in integer
//     range becomes an integer kind.
//   - Arithmetic computes in the promoted kind (ResultKind of the operands)
//     and keeps that kind, so callers never observe precision loss they did
//     not request. Overflow of an integer kind auto-promotes the result to
//     the next wider kind instead of wrapping: Int32 → Int64 → Float64.
//     Float64 overflow follows IEEE semantics (±Inf, NaN propagate).
//
// Errors (sentinel):
//
//   - ErrDivisionByZero if Div or Mod receives a zero-valued divisor.
//   - ErrParse          if Parse receives malformed numeric text.
package numeric

import "errors"

// Sentinel errors returned by the numeric package.
var (
	// ErrDivisionByZero indicates a zero-valued divisor or modulus operand.
	// It is always returned explicitly, never mapped to a sentinel value
	// such as MaxInt32 or ±Inf for integer kinds.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrParse indicates that a string could not be parsed as a number.
	ErrParse = errors.New("numeric: invalid number")
)

// Kind identifies the representation of a Value.
//
// The zero Kind is Invalid so that a zero Value is visibly unusable.
type Kind uint8

const (
	// Invalid marks a Value produced by a failed parse or the zero Value.
	Invalid Kind = iota

	// Int32 holds a 32-bit signed integer.
	Int32

	// Int64 holds a 64-bit signed integer.
	Int64

	// Float32 holds a single-precision float.
	Float32

	// Float64 holds a double-precision float.
	Float64
)

// String returns the kind name for diagnostics and logs.
func (k Kind) String() string {
	switch k {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// IsInteger reports whether k is one of the integer kinds.
func (k Kind) IsInteger() bool { return k == Int32 || k == Int64 }

// IsFloat reports whether k is one of the floating-point kinds.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// promotionRank orders kinds for ResultKind. Wider kinds rank higher.
func promotionRank(k Kind) int {
	switch k {
	case Int32:
		return 1
	case Int64:
		return 2
	case Float32:
		return 3
	case Float64:
		return 4
	default:
		return 0
	}
}

// ResultKind applies the promotion order Float64 > Float32 > Int64 > Int32:
// the result kind of any binary operation is the wider of the two operand
// kinds. If either kind is Invalid, the result is Invalid.
func ResultKind(a, b Kind) Kind {
	if a == Invalid || b == Invalid {
		return Invalid
	}
	if promotionRank(a) >= promotionRank(b) {
		return a
	}

	return b
}
