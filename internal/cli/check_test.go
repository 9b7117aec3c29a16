package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckCommand(t *testing.T) {
	tests := map[string]struct {
		args       []string
		wantStdout string
		wantStderr string
		wantSilent bool
		wantErr    bool
	}{
		"github profile": {
			args:       []string{"check", "https://github.com/lorey"},
			wantStdout: "github\n",
		},
		"x.com maps to twitter": {
			args:       []string{"check", "https://x.com/karllorey"},
			wantStdout: "twitter\n",
		},
		"bare email address": {
			args:       []string{"check", "karl@example.com"},
			wantStdout: "email\n",
		},
		"phone": {
			args:       []string{"check", "tel:+49 123 456"},
			wantStdout: "phone\n",
		},
		"reserved github path": {
			args:       []string{"check", "https://github.com/about"},
			wantStderr: "unknown\n",
			wantSilent: true,
		},
		"unknown host": {
			args:       []string{"check", "https://example.com/lorey"},
			wantStderr: "unknown\n",
			wantSilent: true,
		},
		"missing argument": {
			args:    []string{"check"},
			wantErr: true,
		},
		"too many arguments": {
			args:    []string{"check", "a", "b"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)

			switch {
			case tt.wantSilent:
				if !errors.Is(res.err, ErrSilent) {
					t.Fatalf("expected ErrSilent, got %v", res.err)
				}
			case tt.wantErr:
				if res.err == nil || errors.Is(res.err, ErrSilent) {
					t.Fatalf("expected a reportable error, got %v", res.err)
				}
				return
			case res.err != nil:
				t.Fatalf("Run() error = %v", res.err)
			}

			if res.stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.wantStdout)
			}
			if res.stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", res.stderr, tt.wantStderr)
			}
		})
	}
}

func TestCheckCommand_Explain(t *testing.T) {
	res := runCLI(t, "", "check", "--explain", "https://github.com/lorey/socials")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}

	for _, want := range []string{
		"github\n",
		"scheme:   https",
		"host:     github.com",
		"path:     lorey / socials",
		"parser:   github",
		"github repo",
		"owner: lorey",
		"repo: socials",
		"profile https://github.com/lorey",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("explain output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestCheckCommand_ExplainUnknown(t *testing.T) {
	res := runCLI(t, "", "check", "-e", "https://github.com/settings")
	if !errors.Is(res.err, ErrSilent) {
		t.Fatalf("expected ErrSilent, got %v", res.err)
	}
	for _, want := range []string{"parser:   github", "not recognized"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("explain output missing %q:\n%s", want, res.stdout)
		}
	}
	if res.stderr != "unknown\n" {
		t.Errorf("stderr = %q, want %q", res.stderr, "unknown\n")
	}
}
