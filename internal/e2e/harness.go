// Package e2e provides testing infrastructure for end-to-end CLI tests.
// It includes test harness for running CLI commands, fixture management,
// and utilities for setting up isolated test environments.
package e2e

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/klauern/socials/internal/cli"
)

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Stderr contains the captured standard error, including log output.
	Stderr string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Silent reports whether the command failed after printing its own message.
func (r *Result) Silent() bool {
	return errors.Is(r.Err, cli.ErrSilent)
}

// Harness provides a test harness for running E2E CLI tests.
// It manages environment isolation, temp directories, and output capture.
type Harness struct {
	t       *testing.T
	homeDir string
	env     map[string]string
}

var socialsEnv = []string{
	"SOCIALS_PLATFORMS",
	"SOCIALS_STRICT",
	"SOCIALS_UNIQUE",
	"SOCIALS_OUTPUT_FORMAT",
	"SOCIALS_OUTPUT_COLOR",
}

// NewHarness creates a new E2E test harness.
// It points HOME at an isolated directory and clears the SOCIALS_*
// environment so only the test's own settings apply.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	homeDir := t.TempDir()

	h := &Harness{
		t:       t,
		homeDir: homeDir,
		env:     make(map[string]string),
	}

	h.SetEnv("HOME", homeDir)
	for _, key := range socialsEnv {
		h.SetEnv(key, "")
	}

	return h
}

// SetEnv sets an environment variable for CLI commands run through this harness.
// The environment will be restored after the test completes.
func (h *Harness) SetEnv(key, value string) {
	h.t.Helper()
	h.env[key] = value
	h.t.Setenv(key, value)
}

// HomeDir returns the isolated home directory for this test harness.
func (h *Harness) HomeDir() string {
	return h.homeDir
}

// Run executes a CLI command with the given arguments and captures the output.
// Stdin is empty.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()
	return h.run("", args)
}

// RunWithStdin executes a CLI command with stdin input and captures output.
func (h *Harness) RunWithStdin(stdin string, args ...string) *Result {
	h.t.Helper()
	return h.run(stdin, args)
}

func (h *Harness) run(stdin string, args []string) *Result {
	h.t.Helper()

	// Prepend "socials" as the program name if not provided
	if len(args) == 0 || args[0] != "socials" {
		args = append([]string{"socials"}, args...)
	}

	oldStdin, oldStdout, oldStderr := os.Stdin, os.Stdout, os.Stderr

	stdinR, stdinW := h.pipe()
	go func() {
		defer func() {
			_ = stdinW.Close()
		}()
		_, _ = io.WriteString(stdinW, stdin)
	}()

	stdoutR, stdoutW := h.pipe()
	stderrR, stderrW := h.pipe()

	// Read both streams concurrently to avoid pipe buffer deadlock when
	// a command writes more than the pipe buffer holds.
	stdoutDone := drain(stdoutR)
	stderrDone := drain(stderrR)

	os.Stdin, os.Stdout, os.Stderr = stdinR, stdoutW, stderrW

	cmdErr := cli.Run(context.Background(), args)

	os.Stdin, os.Stdout, os.Stderr = oldStdin, oldStdout, oldStderr
	if err := stdoutW.Close(); err != nil {
		h.t.Fatalf("failed to close stdout pipe writer: %v", err)
	}
	if err := stderrW.Close(); err != nil {
		h.t.Fatalf("failed to close stderr pipe writer: %v", err)
	}
	_ = stdinR.Close()

	stdout := <-stdoutDone
	stderr := <-stderrDone
	if stdout.err != nil {
		h.t.Fatalf("failed to read captured stdout: %v", stdout.err)
	}
	if stderr.err != nil {
		h.t.Fatalf("failed to read captured stderr: %v", stderr.err)
	}

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}

	return &Result{
		Stdout:   stdout.text,
		Stderr:   stderr.text,
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}

func (h *Harness) pipe() (*os.File, *os.File) {
	h.t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create pipe: %v", err)
	}
	return r, w
}

type captured struct {
	text string
	err  error
}

func drain(r *os.File) <-chan captured {
	done := make(chan captured, 1)
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, r)
		_ = r.Close()
		done <- captured{text: buf.String(), err: err}
	}()
	return done
}
