//go:build ignore
// +build ignore

// validate_suite.go runs the fixture suite outside `go test` and
// prints a colored summary. It keeps suite.yaml in sync with reality.
//
// Usage: go run scripts/validate_suite.go [-suite testdata/suite.yaml] [-ci]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sunholo/rinha/internal/harness"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		suitePath = flag.String("suite", "testdata/suite.yaml", "Path to suite manifest")
		ciMode    = flag.Bool("ci", false, "CI mode (fail on any mismatch)")
		verbose   = flag.Bool("verbose", false, "Show output of passing cases too")
	)
	flag.Parse()

	suite, err := harness.LoadSuite(*suitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed to load suite: %v\n", red("Error:"), err)
		os.Exit(1)
	}

	fmt.Printf("%s Rinha fixture suite: %s (%d cases)\n\n", bold("→"), suite.Name, len(suite.Cases))

	failed := 0
	for _, result := range suite.RunAll(filepath.Dir(*suitePath)) {
		if result.Passed() {
			fmt.Printf("  %s %s\n", green("✓"), result.Case.ID)
			if *verbose && result.Stdout != "" {
				fmt.Print(result.Stdout)
			}
			continue
		}
		failed++
		fmt.Printf("  %s %s\n", red("✗"), result.Case.ID)
		if result.Case.ExpectedError != "" {
			fmt.Printf("    expected error %s, got: %v\n", result.Case.ExpectedError, result.Err)
		} else {
			fmt.Printf("    expected stdout %q\n    got %q (err: %v)\n",
				result.Case.ExpectedOut, result.Stdout, result.Err)
		}
	}

	fmt.Printf("\n%d/%d passed\n", len(suite.Cases)-failed, len(suite.Cases))
	if failed > 0 && *ciMode {
		os.Exit(1)
	}
}
