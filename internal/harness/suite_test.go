package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

const fixtureDir = "../../testdata"

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestFixtureSuite(t *testing.T) {
	suite, err := LoadSuite(filepath.Join(fixtureDir, "suite.yaml"))
	if err != nil {
		t.Fatalf("cannot load suite: %v", err)
	}
	if len(suite.Cases) == 0 {
		t.Fatal("suite is empty")
	}

	for _, c := range suite.Cases {
		c := c
		t.Run(c.ID, func(t *testing.T) {
			result := c.Run(fixtureDir)
			if !result.Passed() {
				t.Errorf("case %s failed: stdout=%q err=%v (want stdout=%q error=%q)",
					c.ID, result.Stdout, result.Err, c.ExpectedOut, c.ExpectedError)
			}

			// Snapshot the observable behavior so regressions show as diffs
			if result.Err != nil {
				snaps.MatchSnapshot(t, c.ID+"_error", result.Err.Error())
			} else {
				snaps.MatchSnapshot(t, c.ID+"_output", result.Stdout)
			}
		})
	}
}

func TestLoadSuiteValidation(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := LoadSuite(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	if _, err := LoadSuite(write("bad.yaml", "cases: [")); err == nil {
		t.Error("malformed YAML should fail")
	}

	if _, err := LoadSuite(write("noid.yaml", "cases:\n  - file: x.json\n")); err == nil {
		t.Error("case without id should fail")
	}

	if _, err := LoadSuite(write("nofile.yaml", "cases:\n  - id: x\n")); err == nil {
		t.Error("case without file should fail")
	}

	suite, err := LoadSuite(write("ok.yaml", "name: s\ncases:\n  - id: x\n    file: x.json\n"))
	if err != nil {
		t.Fatalf("valid suite should load: %v", err)
	}
	if suite.Name != "s" || len(suite.Cases) != 1 {
		t.Errorf("unexpected suite: %+v", suite)
	}
}

func TestResultPassed(t *testing.T) {
	ok := Result{Case: Case{ExpectedOut: "1\n"}, Stdout: "1\n"}
	if !ok.Passed() {
		t.Error("matching stdout should pass")
	}

	mismatch := Result{Case: Case{ExpectedOut: "1\n"}, Stdout: "2\n"}
	if mismatch.Passed() {
		t.Error("mismatched stdout should fail")
	}

	plainErr := Result{Case: Case{ExpectedError: "RT004"}, Err: os.ErrNotExist}
	if plainErr.Passed() {
		t.Error("non-runtime error should not satisfy an expected code")
	}
}
