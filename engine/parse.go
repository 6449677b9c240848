package engine

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/vedicmath/dispatch"
	"github.com/katalvlaran/vedicmath/numeric"
)

// ErrExpression indicates expression text that does not form
// "<number> <operator> <number>". Malformed numbers inside an otherwise
// well-formed expression surface as numeric.ErrParse instead.
var ErrExpression = errors.New("engine: invalid expression")

// parseExpression splits expression text into two operands and an
// operation. Spaces around the operator are optional; a leading sign on
// either operand is part of the number, not an operator.
func parseExpression(text string) (numeric.Value, dispatch.Op, numeric.Value, error) {
	lhs, symbol, rhs, err := splitExpression(text)
	if err != nil {
		return numeric.Value{}, 0, numeric.Value{}, err
	}

	op, ok := dispatch.ParseOp(symbol)
	if !ok {
		return numeric.Value{}, 0, numeric.Value{}, fmt.Errorf("%w: unknown operator %q", ErrExpression, symbol)
	}

	a, err := numeric.Parse(lhs)
	if err != nil {
		return numeric.Value{}, 0, numeric.Value{}, err
	}
	b, err := numeric.Parse(rhs)
	if err != nil {
		return numeric.Value{}, 0, numeric.Value{}, err
	}

	return a, op, b, nil
}

// operatorRunes are the symbols splitExpression recognizes as binary
// operators between two number literals.
const operatorRunes = "+-*x×/÷%^"

// splitExpression locates the binary operator in text. The operator is
// the first recognized symbol whose preceding non-space rune belongs to a
// number (digit or decimal point), which keeps leading signs and exponent
// signs ("1e+5") attached to their operands.
func splitExpression(text string) (lhs, op, rhs string, err error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", "", "", fmt.Errorf("%w: empty input", ErrExpression)
	}

	prev := rune(0)
	for i, r := range s {
		if i == 0 || !strings.ContainsRune(operatorRunes, r) {
			if !unicode.IsSpace(r) {
				prev = r
			}

			continue
		}
		if !unicode.IsDigit(prev) && prev != '.' {
			prev = r

			continue
		}

		lhs = strings.TrimSpace(s[:i])
		rhs = strings.TrimSpace(s[i+len(string(r)):])
		if lhs == "" || rhs == "" {
			return "", "", "", fmt.Errorf("%w: %q", ErrExpression, text)
		}

		return lhs, string(r), rhs, nil
	}

	return "", "", "", fmt.Errorf("%w: no operator in %q", ErrExpression, text)
}
