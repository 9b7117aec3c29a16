package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixture provides helpers for creating test fixtures in E2E tests.
type Fixture struct {
	t       *testing.T
	baseDir string
}

// NewFixture creates a new fixture helper rooted at the given directory.
func NewFixture(t *testing.T, baseDir string) *Fixture {
	t.Helper()
	return &Fixture{
		t:       t,
		baseDir: baseDir,
	}
}

// WriteFile writes content to a file relative to the fixture base directory.
// It creates parent directories as needed.
func (f *Fixture) WriteFile(relPath, content string) string {
	f.t.Helper()
	fullPath := filepath.Join(f.baseDir, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		f.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o600); err != nil {
		f.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}

	return fullPath
}

// WriteURLs writes one URL per line to a file relative to the base directory.
func (f *Fixture) WriteURLs(relPath string, urls ...string) string {
	f.t.Helper()
	return f.WriteFile(relPath, strings.Join(urls, "\n")+"\n")
}

// ConfigFixture creates a fixture helper rooted at the socials config
// directory inside the harness home.
func (h *Harness) ConfigFixture() *Fixture {
	h.t.Helper()

	configDir := filepath.Join(h.homeDir, ".config", "socials")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		h.t.Fatalf("failed to create config directory: %v", err)
	}

	return NewFixture(h.t, configDir)
}

// TempFixture creates a fixture helper for a new temporary directory.
func (h *Harness) TempFixture() *Fixture {
	h.t.Helper()

	tempDir := h.t.TempDir()
	return NewFixture(h.t, tempDir)
}
