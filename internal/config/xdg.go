// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "linequiz", "config.toml")
}

// ResolveConfigPath returns the first existing config file in the linequiz config
// directory, checking config.toml, config.yaml and config.yml in that order.
// DefaultConfigPath is returned when none exist.
func ResolveConfigPath() string {
	dir := filepath.Dir(DefaultConfigPath())
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return DefaultConfigPath()
}
