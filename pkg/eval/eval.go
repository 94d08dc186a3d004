// Package eval evaluates textual length expressions for the CLI and REPL.
//
// Supported forms:
//
//	<length>                 2.5 km
//	<expr> to <symbol>       2.5 km to mi
//	<expr> in <symbol>       2.5 km in mi
//	<length> + <length>      5 km + 2000 m
//	<length> - <length>      5 km - 2000 m
//	<length> * <number>      5 km * 10
//	<length> / <number>      5 km / 4
package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sambeau/fathom/pkg/length"
)

// ErrExpression reports an expression that does not match any supported form.
var ErrExpression = errors.New("cannot evaluate expression")

// Options controls evaluation and output formatting.
type Options struct {
	// Precision is the number of decimal places in formatted output;
	// negative means the shortest exact representation.
	Precision int

	// Normalize walks the result to a readable unit before returning it.
	Normalize bool
}

// Evaluate parses and evaluates a length expression.
func Evaluate(input string, opts Options) (length.Length, error) {
	result, err := evalExpr(input)
	if err != nil {
		return length.Length{}, err
	}
	if opts.Normalize {
		result = result.Normalize()
	}
	return result, nil
}

// Format renders a length at the given precision. A negative precision
// produces the shortest representation that round-trips.
func Format(l length.Length, precision int) string {
	if precision < 0 {
		return l.String()
	}
	return strconv.FormatFloat(l.Value, 'f', precision, 64) + " " + l.Unit.Symbol()
}

func evalExpr(input string) (length.Length, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return length.Length{}, fmt.Errorf("%w: empty input", ErrExpression)
	}

	// Conversion form: everything before a trailing "to <symbol>" (or
	// "in <symbol>") is itself an expression.
	fields := strings.Fields(s)
	if len(fields) >= 3 && (fields[len(fields)-2] == "to" || fields[len(fields)-2] == "in") {
		unit, err := length.ParseSymbol(fields[len(fields)-1])
		if err != nil {
			return length.Length{}, err
		}
		operand, err := evalExpr(strings.Join(fields[:len(fields)-2], " "))
		if err != nil {
			return length.Length{}, err
		}
		return operand.To(unit), nil
	}

	// Arithmetic form. Operator characters cannot appear inside a length
	// literal, so the first occurrence splits the operands.
	if i := strings.IndexAny(s, "+-*/"); i >= 0 {
		lhs, err := length.Parse(s[:i])
		if err != nil {
			return length.Length{}, err
		}
		op := s[i]
		rhsText := strings.TrimSpace(s[i+1:])

		switch op {
		case '+', '-':
			rhs, err := length.Parse(rhsText)
			if err != nil {
				return length.Length{}, err
			}
			if op == '+' {
				return lhs.Add(rhs), nil
			}
			return lhs.Subtract(rhs), nil

		default: // '*' or '/'
			n, err := strconv.ParseFloat(rhsText, 64)
			if err != nil {
				return length.Length{}, fmt.Errorf("%w: %q is not a number", ErrExpression, rhsText)
			}
			if op == '*' {
				return lhs.MultiplyBy(n), nil
			}
			return lhs.DivideBy(n), nil
		}
	}

	return length.Parse(s)
}
