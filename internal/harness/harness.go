// Package harness loads and runs the end-to-end fixture suite: a
// YAML manifest naming AST files and the stdout (or error code) each
// one must produce.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sunholo/rinha/internal/errors"
	"github.com/sunholo/rinha/internal/eval"
	"github.com/sunholo/rinha/internal/parser"
)

// Case defines a single fixture: an AST file plus what running it
// must produce. ExpectedError, when set, is the error code the run
// must fail with; ExpectedOut is the exact stdout of a successful run.
type Case struct {
	ID            string `yaml:"id"`
	Description   string `yaml:"description"`
	File          string `yaml:"file"`
	ExpectedOut   string `yaml:"expected_stdout"`
	ExpectedError string `yaml:"expected_error"`
}

// Suite is a named collection of cases
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// LoadSuite loads a suite manifest from a YAML file
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, c := range suite.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case %d missing required field: id", i)
		}
		if c.File == "" {
			return nil, fmt.Errorf("case %q missing required field: file", c.ID)
		}
	}

	return &suite, nil
}

// Result captures one case run
type Result struct {
	Case   Case
	Stdout string
	Err    error
}

// Passed reports whether the run matched the case's expectation
func (r Result) Passed() bool {
	if r.Case.ExpectedError != "" {
		re, ok := errors.AsRuntime(r.Err)
		return ok && re.Code == r.Case.ExpectedError
	}
	return r.Err == nil && r.Stdout == r.Case.ExpectedOut
}

// Run decodes and evaluates the case's AST file relative to dir,
// capturing print output
func (c Case) Run(dir string) Result {
	data, err := os.ReadFile(filepath.Join(dir, c.File))
	if err != nil {
		return Result{Case: c, Err: err}
	}

	file, err := parser.DecodeFile(data)
	if err != nil {
		return Result{Case: c, Err: err}
	}

	var out bytes.Buffer
	_, err = eval.New(&out).EvalFile(file)
	return Result{Case: c, Stdout: out.String(), Err: err}
}

// RunAll runs every case in the suite against fixtures in dir
func (s *Suite) RunAll(dir string) []Result {
	results := make([]Result, len(s.Cases))
	for i, c := range s.Cases {
		results[i] = c.Run(dir)
	}
	return results
}
