package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbtool/udb/pkg/config"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	assert.Equal(t,
		filepath.Join(tempHome, ".config", "udb"),
		config.ConfigDir(tempHome),
	)
	assert.Equal(t,
		filepath.Join(tempHome, ".config", "udb", "config.json"),
		config.ConfigFilePath(tempHome),
	)
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "universal_db", cfg.Database.Name)
		assert.Equal(t, "webadmin", cfg.Database.User)
		assert.Equal(t, "Password123!", cfg.Database.Password)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 3306, cfg.Database.Port)

		// Log defaults
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "stderr", cfg.Log.Destination)
	})
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseHost(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "sets valid port", input: 3307, expected: 3307},
		{name: "ignores zero", input: 0, expected: 3306},
		{name: "ignores negative", input: -1, expected: 3306},
		{name: "ignores above range", input: 70000, expected: 3306},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePort(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{config.OptLogLevel("DEBUG")})
	assert.Equal(t, "debug", cfg.Log.Level, "level is lowercased")

	cfg.Update([]config.Option{config.OptLogLevel("loud")})
	assert.Equal(t, "debug", cfg.Log.Level, "invalid level is ignored")
}

func TestToOptionsRoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDatabaseName("blog_db"),
		config.OptDatabaseUser("blogger"),
		config.OptDatabaseHost("10.0.0.5"),
		config.OptDatabasePort(3307),
		config.OptLogLevel("warn"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src, dst)
}
