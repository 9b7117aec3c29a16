// Package config provides configuration management for socials.
// It supports YAML or TOML configuration files, environment variables, and
// sensible defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/klauern/socials/internal/export"
	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/util"
)

// Config represents the complete socials configuration.
type Config struct {
	// Extract configures default extraction behavior
	Extract ExtractConfig `yaml:"extract" toml:"extract"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output" toml:"output"`
}

// ExtractConfig holds extraction settings.
type ExtractConfig struct {
	// Platforms restricts extraction to these platforms; empty means all
	Platforms []string `yaml:"platforms,omitempty" toml:"platforms,omitempty"`
	// Strict fails on the first unrecognized URL
	Strict bool `yaml:"strict" toml:"strict"`
	// Unique drops repeated URLs from results
	Unique bool `yaml:"unique" toml:"unique"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Format is the default output format (text, json, yaml, markdown)
	Format string `yaml:"format" toml:"format"`
	// Color controls color output (auto, always, never)
	Color string `yaml:"color" toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// FilePath returns the path to the YAML config file.
func FilePath() string {
	return util.SocialsConfigPath()
}

// Load loads the configuration from the user's config directory, merging
// with defaults. config.yaml is preferred over config.toml; when neither
// exists the defaults are used.
func Load() (*Config, error) {
	for _, path := range []string{util.SocialsConfigPath(), util.SocialsTOMLConfigPath()} {
		cfg, err := LoadFromPath(path)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := Default()
	cfg.applyEnvironment()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	return c.SaveToPath(FilePath())
}

// SaveToPath writes the configuration to a specific path as YAML.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that configured platform names, output format and color
// mode are known. An empty format or color leaves the default in effect.
func (c *Config) Validate() error {
	for _, name := range c.Extract.Platforms {
		if _, err := model.ParsePlatform(name); err != nil {
			return fmt.Errorf("extract.platforms: %w", err)
		}
	}
	if c.Output.Format != "" {
		if _, err := export.ParseFormat(c.Output.Format); err != nil {
			return fmt.Errorf("output.format: %w", err)
		}
	}
	switch strings.ToLower(c.Output.Color) {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: invalid value %q (valid: auto, always, never)", c.Output.Color)
	}
	return nil
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern SOCIALS_<SECTION>_<KEY>, except
// the extraction settings which drop the section name.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("SOCIALS_PLATFORMS"); v != "" {
		c.Extract.Platforms = splitList(v)
	}
	if v := os.Getenv("SOCIALS_STRICT"); v != "" {
		c.Extract.Strict = parseBool(v)
	}
	if v := os.Getenv("SOCIALS_UNIQUE"); v != "" {
		c.Extract.Unique = parseBool(v)
	}

	if v := os.Getenv("SOCIALS_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("SOCIALS_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// PlatformFilter returns the configured platforms in the form the extractor
// expects: nil (all platforms) when none are configured.
func (c *Config) PlatformFilter() []string {
	if len(c.Extract.Platforms) == 0 {
		return nil
	}
	return c.Extract.Platforms
}
