// Package repl implements fathom's interactive prompt.
package repl

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/sambeau/fathom/config"
	"github.com/sambeau/fathom/pkg/eval"
)

const PROMPT = ">> "

const FATHOM_LOGO = `
█▀▀ ▄▀█ ▀█▀ █░█ █▀█ █▀▄▀█
█▀░ █▀█ ░█░ █▀█ █▄█ █░▀░█ `

// replCommands are offered by tab completion alongside the unit symbols.
var replCommands = []string{
	":help", ":units", ":precision", ":normalize",
	"exit", "quit", "to", "in",
}

// Start starts the REPL with line editing, history, and tab completion
func Start(out io.Writer, cfg *config.Config, version string) {
	line := liner.NewLiner()
	defer line.Close()

	// Enable Ctrl+C to abort current line
	line.SetCtrlCAborts(true)

	// Set up tab completion
	line.SetCompleter(func(line string) []string {
		return filterCompletions(line)
	})

	// Load command history from file
	if f, err := os.Open(cfg.HistoryFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	// Save history on exit
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	opts := eval.Options{
		Precision: cfg.Precision,
		Normalize: cfg.AutoNormalize,
	}

	fmt.Fprintf(out, "%s", FATHOM_LOGO)
	fmt.Fprintln(out, "v", version)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit")
	fmt.Fprintln(out, "Use Tab for completion, ↑↓ for history")
	fmt.Fprintln(out, "Type ':help' for REPL commands")
	fmt.Fprintln(out, "")

	for {
		input, err := line.Prompt(PROMPT)
		if err != nil {
			// Ctrl+D or Ctrl+C
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}

		// Check for exit command
		if trimmed == "exit" || trimmed == "quit" {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		// Handle REPL commands (start with :)
		if strings.HasPrefix(trimmed, ":") {
			handleReplCommand(trimmed, &opts, out)
			continue
		}

		line.AppendHistory(input)

		result, err := eval.Evaluate(trimmed, opts)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, eval.Format(result, opts.Precision))
	}
}

// handleReplCommand handles REPL meta-commands that start with ':'
func handleReplCommand(cmd string, opts *eval.Options, out io.Writer) {
	fields := strings.Fields(cmd)

	switch fields[0] {
	case ":help", ":h", ":?":
		fmt.Fprintln(out, "REPL Commands:")
		fmt.Fprintln(out, "  :help, :h, :?        Show this help")
		fmt.Fprintln(out, "  :units               List all known units")
		fmt.Fprintln(out, "  :precision [n]       Show or set output precision (-1 = shortest)")
		fmt.Fprintln(out, "  :normalize [on|off]  Show or toggle result normalization")
		fmt.Fprintln(out, "  exit, quit           Exit the REPL")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Expressions:")
		fmt.Fprintln(out, "  2.5 km               Parse a length")
		fmt.Fprintln(out, "  2.5 km to mi         Convert to another unit")
		fmt.Fprintln(out, "  5 km + 2000 m        Add or subtract lengths")
		fmt.Fprintln(out, "  5 km * 10            Scale by a number")

	case ":units":
		fmt.Fprint(out, eval.UnitsListing())

	case ":precision":
		if len(fields) < 2 {
			if opts.Precision < 0 {
				fmt.Fprintln(out, "precision: shortest")
			} else {
				fmt.Fprintf(out, "precision: %d\n", opts.Precision)
			}
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < -1 || n > 17 {
			fmt.Fprintf(out, "Invalid precision %q (use -1 to 17)\n", fields[1])
			return
		}
		opts.Precision = n
		if n < 0 {
			fmt.Fprintln(out, "Precision set to shortest")
		} else {
			fmt.Fprintf(out, "Precision set to %d\n", n)
		}

	case ":normalize":
		if len(fields) < 2 {
			if opts.Normalize {
				fmt.Fprintln(out, "normalize: on")
			} else {
				fmt.Fprintln(out, "normalize: off")
			}
			return
		}
		switch fields[1] {
		case "on":
			opts.Normalize = true
			fmt.Fprintln(out, "Normalization ON")
		case "off":
			opts.Normalize = false
			fmt.Fprintln(out, "Normalization OFF")
		default:
			fmt.Fprintf(out, "Invalid argument %q (use on or off)\n", fields[1])
		}

	default:
		fmt.Fprintf(out, "Unknown command: %s (type :help for commands)\n", fields[0])
	}
}

// filterCompletions returns completion suggestions based on current input
func filterCompletions(line string) []string {
	// Don't complete if line is empty or only whitespace
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	// Don't complete if line ends with whitespace (including tabs from pasting)
	if line[len(line)-1] == ' ' || line[len(line)-1] == '\t' {
		return nil
	}

	// Get the last word being typed
	words := strings.Fields(line)
	lastWord := words[len(words)-1]
	prefix := line[:len(line)-len(lastWord)]

	var matches []string
	for _, word := range replCommands {
		if strings.HasPrefix(word, lastWord) {
			matches = append(matches, prefix+word)
		}
	}
	for _, symbol := range eval.Symbols() {
		if strings.HasPrefix(symbol, lastWord) {
			matches = append(matches, prefix+symbol)
		}
	}
	return matches
}
