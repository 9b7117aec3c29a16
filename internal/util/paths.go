package util

import (
	"os"
	"path/filepath"
)

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// SocialsConfigDir returns the socials configuration directory
func SocialsConfigDir() string {
	return filepath.Join(HomeDir(), ".config", "socials")
}

// SocialsConfigPath returns the default YAML config file path
func SocialsConfigPath() string {
	return filepath.Join(SocialsConfigDir(), "config.yaml")
}

// SocialsTOMLConfigPath returns the alternate TOML config file path
func SocialsTOMLConfigPath() string {
	return filepath.Join(SocialsConfigDir(), "config.toml")
}
