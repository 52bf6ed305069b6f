// Package repl implements an interactive Rinha term evaluator.
// Rinha has no textual syntax of its own on this side of the
// pipeline, so the REPL consumes the same JSON term encoding the
// interpreter reads from files: one term per line, evaluated against
// a persistent top-level environment.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/sunholo/rinha/internal/errors"
	"github.com/sunholo/rinha/internal/eval"
	"github.com/sunholo/rinha/internal/parser"
)

// Color functions for pretty output
var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

var replCommands = []string{":help", ":quit", ":load", ":let", ":env", ":reset"}

// REPL represents the read-eval-print loop
type REPL struct {
	evaluator *eval.Evaluator
	env       *eval.Environment
	history   []string
	version   string
}

// New creates a REPL writing program output to out
func New(out io.Writer, version string) *REPL {
	if version == "" {
		version = "dev"
	}
	return &REPL{
		evaluator: eval.New(out),
		env:       eval.NewEnvironment(),
		version:   version,
	}
}

// Start begins the REPL session
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".rinha_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f) // Ignore error as history is optional
		f.Close()
	}

	fmt.Fprintf(out, "%s %s\n", bold("Rinha"), bold(r.version))
	fmt.Fprintln(out, dim("Enter a JSON-encoded term per line"))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	line.SetCompleter(func(line string) (c []string) {
		if strings.HasPrefix(line, ":") {
			for _, cmd := range replCommands {
				if strings.HasPrefix(cmd, line) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	for {
		input, err := line.Prompt("rinha> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" || input == ":q" || input == ":exit" {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			r.handleCommand(input, out)
			continue
		}

		r.evalInput(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f) // Ignore error as history is optional
		f.Close()
	}
}

func (r *REPL) handleCommand(input string, out io.Writer) {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case ":help", ":h":
		r.printHelp(out)

	case ":load":
		if rest == "" {
			fmt.Fprintf(out, "%s: usage: :load <file.json>\n", red("Error"))
			return
		}
		r.loadFile(rest, out)

	case ":let":
		name, termJSON, ok := strings.Cut(rest, " ")
		if !ok || name == "" {
			fmt.Fprintf(out, "%s: usage: :let <name> <json-term>\n", red("Error"))
			return
		}
		term, err := parser.DecodeTerm([]byte(termJSON))
		if err != nil {
			r.printError(err, out)
			return
		}
		value, err := r.evaluator.Eval(term, r.env)
		if err != nil {
			r.printError(err, out)
			return
		}
		r.env.Set(name, value)
		fmt.Fprintf(out, "%s = %s\n", cyan(name), value.String())

	case ":env":
		names := r.env.Names()
		if len(names) == 0 {
			fmt.Fprintln(out, dim("(empty environment)"))
			return
		}
		for _, name := range names {
			value, _ := r.env.Get(name)
			fmt.Fprintf(out, "%s = %s\n", cyan(name), value.String())
		}

	case ":reset":
		r.env = eval.NewEnvironment()
		fmt.Fprintln(out, green("Environment cleared"))

	default:
		fmt.Fprintf(out, "%s: unknown command %s\n", red("Error"), cmd)
	}
}

// evalInput decodes one line as a term, falling back to a whole File
// when the line carries an {expression: ...} object
func (r *REPL) evalInput(input string, out io.Writer) {
	term, err := parser.DecodeTerm([]byte(input))
	if err != nil {
		if strings.Contains(input, "\"expression\"") {
			file, ferr := parser.DecodeFile([]byte(input))
			if ferr != nil {
				r.printError(ferr, out)
				return
			}
			term = file.Expression
		} else {
			r.printError(err, out)
			return
		}
	}

	value, err := r.evaluator.Eval(term, r.env)
	if err != nil {
		r.printError(err, out)
		return
	}
	fmt.Fprintf(out, "%s %s\n", dim("=>"), value.String())
}

// loadFile evaluates a file's expression against the session
// environment, keeping any print output
func (r *REPL) loadFile(path string, out io.Writer) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "%s: cannot read %s: %v\n", red("Error"), path, err)
		return
	}
	file, err := parser.DecodeFile(data)
	if err != nil {
		r.printError(err, out)
		return
	}
	value, err := r.evaluator.Eval(file.Expression, r.env)
	if err != nil {
		r.printError(err, out)
		return
	}
	fmt.Fprintf(out, "%s %s\n", dim("=>"), value.String())
}

func (r *REPL) printError(err error, out io.Writer) {
	if re, ok := errors.AsRuntime(err); ok && re.Loc.Filename != "" {
		fmt.Fprintf(out, "%s[%s] %s: %s\n", red("Error"), re.Code, re.Loc, re.Message)
		return
	}
	fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("Rinha REPL"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Enter a JSON-encoded Rinha term to evaluate it, e.g.")
	fmt.Fprintln(out, dim(`  {"kind": "Binary", "op": "Add", "lhs": {"kind": "Int", "value": 1}, "rhs": {"kind": "Int", "value": 2}}`))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintf(out, "  %s               Show this help\n", cyan(":help"))
	fmt.Fprintf(out, "  %s <file>        Evaluate an AST file in this session\n", cyan(":load"))
	fmt.Fprintf(out, "  %s <name> <term> Bind the term's value to a name\n", cyan(":let"))
	fmt.Fprintf(out, "  %s                Show session bindings\n", cyan(":env"))
	fmt.Fprintf(out, "  %s              Clear session bindings\n", cyan(":reset"))
	fmt.Fprintf(out, "  %s               Exit\n", cyan(":quit"))
}
