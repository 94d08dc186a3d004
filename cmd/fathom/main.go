package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sambeau/fathom/config"
	"github.com/sambeau/fathom/pkg/eval"
	"github.com/sambeau/fathom/pkg/repl"
)

// Version is set at compile time via -ldflags
var Version = "0.3.1"

// precisionUnset marks -p as not given, so the config value applies.
const precisionUnset = -2

var (
	// Display flags
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")

	// Evaluation flags
	evalFlag          = flag.String("e", "", "Evaluate expression string")
	evalLongFlag      = flag.String("eval", "", "Evaluate expression string")
	normalizeFlag     = flag.Bool("n", false, "Normalize the result to a readable unit")
	normalizeLongFlag = flag.Bool("normalize", false, "Normalize the result to a readable unit")
	precisionFlag     = flag.Int("p", precisionUnset, "Decimal places in output (-1 = shortest)")

	// Configuration flags
	configFlag = flag.String("config", "", "Path to config file")
)

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 && os.Args[1] == "units" {
		fmt.Print(eval.UnitsListing())
		return
	}

	// Customize flag usage message
	flag.Usage = printHelp
	flag.Parse()

	// Check for help flag
	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}

	// Check for version flag
	if *versionFlag || *versionLongFlag {
		fmt.Printf("fathom version %s\n", Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	opts := eval.Options{
		Precision: cfg.Precision,
		Normalize: cfg.AutoNormalize,
	}
	if *precisionFlag != precisionUnset {
		if *precisionFlag < -1 || *precisionFlag > 17 {
			fmt.Fprintf(os.Stderr, "Error: invalid precision %d (must be -1 to 17)\n", *precisionFlag)
			os.Exit(2)
		}
		opts.Precision = *precisionFlag
	}
	if *normalizeFlag || *normalizeLongFlag {
		opts.Normalize = true
	}

	// Get eval expression (prefer -e over --eval if both set)
	expression := *evalFlag
	if expression == "" {
		expression = *evalLongFlag
	}

	// Mode dispatch
	switch {
	case expression != "":
		// Inline evaluation mode
		os.Exit(runExpression(expression, opts, os.Stdout, os.Stderr))
	case len(flag.Args()) > 0:
		// Positional expression mode: join the args back into one expression
		os.Exit(runExpression(strings.Join(flag.Args(), " "), opts, os.Stdout, os.Stderr))
	default:
		// REPL mode
		repl.Start(os.Stdout, cfg, Version)
	}
}

// runExpression evaluates one expression and prints the result or the error.
func runExpression(expression string, opts eval.Options, out, errOut io.Writer) int {
	result, err := eval.Evaluate(expression, opts)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, eval.Format(result, opts.Precision))
	return 0
}

func printHelp() {
	fmt.Printf(`fathom - length calculator version %s

Usage:
  fathom [options]                  Start interactive REPL
  fathom [options] <expression>     Evaluate an expression
  fathom -e "<expression>"          Evaluate an expression string
  fathom units                      List all known units

Commands:
  units                 List every unit per system with its symbol

Display Options:
  -h, --help            Show this help message
  -V, --version         Show version information

Evaluation Options:
  -e, --eval <expr>     Evaluate expression string
  -n, --normalize       Normalize the result to a readable unit
  -p <n>                Decimal places in output (-1 = shortest, default)

Configuration Options:
  -config <path>        Path to config file
                        (default: FATHOM_CONFIG, ./fathom.yaml,
                        ~/.config/fathom/config.yaml)

Expressions:
  <length>                          2.5 km
  <expression> to <symbol>          2.5 km to mi
  <expression> in <symbol>          26 mi in km
  <length> + <length>               5 km + 2000 m
  <length> - <length>               5 km - 2000 m
  <length> * <number>               5 km * 10
  <length> / <number>               5 km / 4

Examples:
  fathom                            Start interactive REPL
  fathom 2.5 km to mi               Convert kilometers to miles
  fathom -e "5 km + 2000 m"         Add two lengths
  fathom -n -e "5000 m"             Normalize (outputs: 5 km)
  fathom -p 2 -e "1 mi to km"       Two decimal places (outputs: 1.61 km)
  fathom units                      List all 34 units

For more information, visit: https://github.com/sambeau/fathom
`, Version)
}
