package eval

import (
	"fmt"
	"strings"

	"github.com/sambeau/fathom/pkg/length"
)

// UnitsListing renders the full unit catalogue grouped by system, for the
// `fathom units` subcommand and the REPL's :units command.
func UnitsListing() string {
	var b strings.Builder
	for i, sys := range []length.System{length.Metric, length.Imperial, length.Astronomic} {
		if i > 0 {
			b.WriteString("\n")
		}
		name := sys.String()
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(name[:1])+name[1:])
		for _, u := range length.Units(sys) {
			fmt.Fprintf(&b, "  %-4s %s\n", u.Symbol(), u.Name())
		}
	}
	return b.String()
}

// Symbols returns every unit symbol, smallest unit first within each system.
func Symbols() []string {
	symbols := make([]string, 0, 34)
	for _, sys := range []length.System{length.Metric, length.Imperial, length.Astronomic} {
		for _, u := range length.Units(sys) {
			symbols = append(symbols, u.Symbol())
		}
	}
	return symbols
}
