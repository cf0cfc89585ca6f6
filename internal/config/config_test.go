package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from yaml", func(t *testing.T) {
		// Given: a config file with a log level and two moves
		path := writeConfig(t, "log-level: debug\nlog-format: text\nmoves:\n  - \"0,0\"\n  - restart\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the values are populated
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.Equal(t, []string{"0,0", "restart"}, conf.Moves)
	})

	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "{}\n")

		// When: loading it
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
		assert.Empty(t, conf.Moves)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and overriding environment
		path := writeConfig(t, "log-level: debug\n")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("MOVES", "1,1;2,2")

		// When: loading it
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, []string{"1,1", "2,2"}, conf.Moves)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
