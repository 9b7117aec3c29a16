package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauern/socials/internal/config"
)

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	res := runCLI(t, "", "config", "path")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	want := filepath.Join(home, ".config", "socials", "config.yaml")
	if got := strings.TrimSpace(res.stdout); got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}
}

func TestConfigShow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SOCIALS_PLATFORMS", "github, twitter")

	res := runCLI(t, "", "config", "show")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	for _, want := range []string{"format: text", "color: auto", "- github", "- twitter"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config show missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	res := runCLI(t, "", "config", "init")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "Wrote") {
		t.Errorf("stdout = %q, want a confirmation", res.stdout)
	}

	if _, err := os.Stat(config.FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	cfg, err := config.LoadFromPath(config.FilePath())
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.Output != config.Default().Output || cfg.Extract.Strict || cfg.Extract.Unique || len(cfg.Extract.Platforms) != 0 {
		t.Errorf("written config = %+v, want defaults", cfg)
	}

	res = runCLI(t, "", "config", "init")
	if res.err == nil || !strings.Contains(res.err.Error(), "already exists") {
		t.Fatalf("second init error = %v, want already exists", res.err)
	}

	res = runCLI(t, "", "config", "init", "--force")
	if res.err != nil {
		t.Fatalf("init --force error = %v", res.err)
	}
}
