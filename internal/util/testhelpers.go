//nolint:revive // var-naming - package name is meaningful
package util

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// AssertEqual fails if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

var updateGolden bool

// SetUpdateGolden makes GoldenFile rewrite golden files instead of comparing.
// Test binaries call it from TestMain with their -update flag.
func SetUpdateGolden(update bool) {
	updateGolden = update
}

// GoldenFile compares got with testdataDir/name.golden, or rewrites the
// file when updating.
func GoldenFile(t *testing.T, testdataDir, name, got string) {
	t.Helper()
	path := filepath.Join(testdataDir, name+".golden")

	if updateGolden {
		WriteFile(t, path, got)
		return
	}

	// #nosec G304 - path is built from the test's testdata directory
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nRun with -update to create it", path, err)
	}
	if got != string(want) {
		t.Errorf("%s does not match golden file\n--- got ---\n%s\n--- want ---\n%s", name, got, want)
	}
}
