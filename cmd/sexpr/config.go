package main

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config carries the REPL settings. Everything has a default, so running
// without a config file is the normal case.
type Config struct {
	// Prompt is printed before reading each input line.
	Prompt string `yaml:"prompt"`
	// History is the path of the line-editing history file. A leading ~ is
	// expanded to the user's home directory.
	History string `yaml:"history"`
	// NoColor disables colored output.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the settings used when no config file overrides them.
func DefaultConfig() *Config {
	return &Config{
		Prompt:  "<rpn> ",
		History: "~/.sexpr_history",
	}
}

// LoadConfig reads a YAML config file into the defaults. A missing file is
// not an error; a present but malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	if cfg.History == "" {
		cfg.History = DefaultConfig().History
	}
	return cfg, nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[0] != '~' || path[1] != '/' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
