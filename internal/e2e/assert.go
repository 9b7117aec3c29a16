package e2e

import (
	"os"
	"strings"
	"testing"

	"github.com/klauern/socials/internal/util"
)

// AssertSuccess fails the test if the command returned an error.
func AssertSuccess(t *testing.T, r *Result) {
	t.Helper()
	if !r.Success() {
		t.Fatalf("expected success, got error: %v\nstderr: %s", r.Err, r.Stderr)
	}
}

// AssertFailure fails the test unless the command exited 1 with an error
// whose message contains errSubstr. An empty errSubstr only checks the exit.
func AssertFailure(t *testing.T, r *Result, errSubstr string) {
	t.Helper()
	if r.Success() {
		t.Fatalf("expected failure, command succeeded\nstdout: %s", r.Stdout)
	}
	if r.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", r.ExitCode)
	}
	if errSubstr != "" && !strings.Contains(r.Err.Error(), errSubstr) {
		t.Errorf("error %q does not contain %q", r.Err, errSubstr)
	}
}

// AssertStdout fails the test if stdout is not exactly want.
func AssertStdout(t *testing.T, r *Result, want string) {
	t.Helper()
	if r.Stdout != want {
		t.Errorf("stdout = %q, want %q", r.Stdout, want)
	}
}

// AssertStdoutContains fails the test for each substring missing from stdout.
func AssertStdoutContains(t *testing.T, r *Result, substrs ...string) {
	t.Helper()
	assertContains(t, "stdout", r.Stdout, substrs)
}

// AssertStdoutOmits fails the test for each substring present in stdout.
func AssertStdoutOmits(t *testing.T, r *Result, substrs ...string) {
	t.Helper()
	for _, s := range substrs {
		if strings.Contains(r.Stdout, s) {
			t.Errorf("stdout should not contain %q\ngot: %s", s, r.Stdout)
		}
	}
}

// AssertStderrContains fails the test for each substring missing from stderr.
func AssertStderrContains(t *testing.T, r *Result, substrs ...string) {
	t.Helper()
	assertContains(t, "stderr", r.Stderr, substrs)
}

// AssertGolden compares stdout with testdata/<name>.golden.
func AssertGolden(t *testing.T, r *Result, name string) {
	t.Helper()
	util.GoldenFile(t, "testdata", name, r.Stdout)
}

// AssertFileContains fails the test if path is missing or lacks any of substrs.
func AssertFileContains(t *testing.T, path string, substrs ...string) {
	t.Helper()
	// #nosec G304 - path is provided by test code
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	assertContains(t, path, string(data), substrs)
}

// AssertNoFile fails the test if path exists.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("%s should not exist", path)
	}
}

func assertContains(t *testing.T, what, got string, substrs []string) {
	t.Helper()
	for _, s := range substrs {
		if !strings.Contains(got, s) {
			t.Errorf("%s should contain %q\ngot: %s", what, s, got)
		}
	}
}
