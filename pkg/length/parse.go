package length

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrParse reports text that does not match the length expression
	// grammar: an unsigned decimal number followed by a unit symbol.
	ErrParse = errors.New("cannot parse length expression")

	// ErrUnknownSymbol reports a unit symbol that is not one of the 34
	// known symbols.
	ErrUnknownSymbol = errors.New("unknown unit symbol")
)

// lengthPattern matches an optionally padded unsigned decimal number
// followed by a 1-3 letter unit symbol. No sign, no exponent. The symbol
// class includes the micro sign so "µm" parses.
var lengthPattern = regexp.MustCompile(`^\s*([0-9]+(\.[0-9]+)?)\s*([a-zA-Zµ]{1,3})\s*$`)

// Parse builds a Length from a textual expression such as "2m", "23.5 km",
// or "2.3 ly". The verbatim matched text is retained and available via
// OriginalString.
func Parse(s string) (Length, error) {
	m := lengthPattern.FindStringSubmatch(s)
	if m == nil {
		return Length{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q", ErrParse, s)
	}

	unit, err := ParseSymbol(m[3])
	if err != nil {
		return Length{}, err
	}

	return Length{Value: value, Unit: unit, original: m[0]}, nil
}
