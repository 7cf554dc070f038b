package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"bad theme", func(c *Config) { c.Theme = "purple" }, "Theme must be one of [off brown green gray]"},
		{"missing theme", func(c *Config) { c.Theme = "" }, "Theme is required"},
		{"bad player", func(c *Config) { c.White = "robot" }, "White must be one of"},
		{"white alone", func(c *Config) { c.White = "human" }, "Black is required when White is set"},
		{"black alone", func(c *Config) { c.Black = "c" }, "White is required when Black is set"},
		{"zero games", func(c *Config) { c.Games = 0 }, "Games must be at least 1"},
		{"too many workers", func(c *Config) { c.Concurrency = 65 }, "Concurrency must be at most 64"},
		{"long position", func(c *Config) { c.Position = string(make([]byte, 101)) }, "Position must be at most 100 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateBothPlayers(t *testing.T) {
	cfg := Default()
	cfg.White = "human"
	cfg.Black = "computer"
	assert.NoError(t, cfg.Validate())
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Games = 0
	cfg.MaxPlies = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Games must be at least 1; MaxPlies must be at least 1")
}

func TestLoadEnv(t *testing.T) {
	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHECKERS_TEST_THEME=green\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CHECKERS_TEST_THEME") })

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "green", os.Getenv("CHECKERS_TEST_THEME"))
}
