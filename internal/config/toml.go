// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileConfig represents the configuration file.
type FileConfig struct {
	Quiz    QuizConfig    `toml:"quiz" yaml:"quiz"`
	Display DisplayConfig `toml:"display" yaml:"display"`
}

// QuizConfig maps target-point settings.
type QuizConfig struct {
	PointX      *float64 `toml:"point-x" yaml:"point-x"`
	PointY      *float64 `toml:"point-y" yaml:"point-y"`
	RandomPoint *bool    `toml:"random-point" yaml:"random-point"`
	Seed        *int64   `toml:"seed" yaml:"seed"`
}

// DisplayConfig maps rendering settings.
type DisplayConfig struct {
	Margin     *int  `toml:"margin" yaml:"margin"`
	FeedbackMs *int  `toml:"feedback-ms" yaml:"feedback-ms"`
	History    *int  `toml:"history" yaml:"history"`
	Banner     *bool `toml:"banner" yaml:"banner"`
}

// LoadConfig reads a config from the given path. Missing file is not an error.
// Files ending in .yaml or .yml are decoded as YAML, anything else as TOML.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	return cfg, nil
}
