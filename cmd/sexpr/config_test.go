package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "<rpn> ", cfg.Prompt)
	assert.Equal(t, "~/.sexpr_history", cfg.History)
	assert.False(t, cfg.NoColor)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sexpr.yaml")
	err := os.WriteFile(path, []byte("prompt: \"? \"\nno_color: true\n"), 0o644)
	assert.NoError(t, err)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "? ", cfg.Prompt)
	assert.True(t, cfg.NoColor)
	// Unset keys keep their defaults.
	assert.Equal(t, "~/.sexpr_history", cfg.History)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sexpr.yaml")
	err := os.WriteFile(path, []byte("prompt: [unterminated"), 0o644)
	assert.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}
