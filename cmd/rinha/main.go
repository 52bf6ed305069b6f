package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sunholo/rinha/internal/errors"
	"github.com/sunholo/rinha/internal/eval"
	"github.com/sunholo/rinha/internal/parser"
	"github.com/sunholo/rinha/internal/repl"
)

var (
	// Version info - set by ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"

	// Color output
	red  = color.New(color.FgRed).SprintFunc()
	cyan = color.New(color.FgCyan).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

var jsonErrors bool

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
	)
	flag.BoolVar(&jsonErrors, "json-errors", false, "Report errors as JSON on stderr")

	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch command := flag.Arg(0); command {
	case "run":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Fprintln(os.Stderr, "Usage: rinha run <file.json>")
			os.Exit(1)
		}
		runFile(flag.Arg(1))

	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Fprintln(os.Stderr, "Usage: rinha check <file.json>")
			os.Exit(1)
		}
		checkFile(flag.Arg(1))

	case "repl":
		repl.New(os.Stdout, Version).Start(os.Stdout)

	case "version":
		printVersion()

	case "help":
		printHelp()

	default:
		// Bare `rinha <file.json>` runs the file
		runFile(command)
	}
}

// runFile reads, decodes and evaluates an AST file. Program print
// output is the only thing written to stdout; diagnostics go to
// stderr.
func runFile(filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file '%s': %v\n", red("Error"), filename, err)
		os.Exit(1)
	}

	file, err := parser.DecodeFile(content)
	if err != nil {
		diagnose(err)
		os.Exit(1)
	}

	if _, err := eval.New(os.Stdout).EvalFile(file); err != nil {
		diagnose(err)
		os.Exit(1)
	}
}

// checkFile decodes an AST file without evaluating it
func checkFile(filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file '%s': %v\n", red("Error"), filename, err)
		os.Exit(1)
	}

	file, err := parser.DecodeFile(content)
	if err != nil {
		diagnose(err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s is a well-formed AST (%s)\n", filename, file.Name)
}

// diagnose prints an interpreter error to stderr, either as a colored
// human diagnostic or, with --json-errors, as a structured report
func diagnose(err error) {
	if jsonErrors {
		out, jerr := errors.NewReport(err).ToJSON(false)
		if jerr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			return
		}
		fmt.Fprintln(os.Stderr, out)
		return
	}

	if re, ok := errors.AsRuntime(err); ok && re.Loc.Filename != "" {
		fmt.Fprintf(os.Stderr, "%s[%s] %s: %s\n", red("Error"), re.Code, re.Loc, re.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
}

func printVersion() {
	fmt.Printf("rinha %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("Commit: %s\n", Commit)
	}
	if BuildTime != "unknown" {
		fmt.Printf("Built:  %s\n", BuildTime)
	}
}

func printHelp() {
	fmt.Println(bold("rinha - a tree-walking interpreter for the Rinha language"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rinha <file.json>")
	fmt.Println("  rinha <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <file>    Evaluate a JSON-encoded AST file\n", cyan("run"))
	fmt.Printf("  %s <file>  Decode a file without evaluating it\n", cyan("check"))
	fmt.Printf("  %s           Start the interactive term evaluator\n", cyan("repl"))
	fmt.Printf("  %s        Print version information\n", cyan("version"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --version        Print version information")
	fmt.Println("  --help           Show this help message")
	fmt.Println("  --json-errors    Report errors as structured JSON on stderr")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s      # Evaluate a program\n", cyan("rinha run fib.json"))
	fmt.Printf("  %s          # Start REPL\n", cyan("rinha repl"))
	fmt.Printf("  %s    # Validate an AST file\n", cyan("rinha check fib.json"))
}
