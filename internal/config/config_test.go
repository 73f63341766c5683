package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingDefaultFileYieldsDefaults(t *testing.T) {
	// Run from a directory that cannot contain reportdemo.toml.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeSettings(t, `
[logging]
level = "debug"
file  = "out/sink.log"

[docs]
base_url = "https://docs.example.com/errors"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "out/sink.log", cfg.Logging.File)
	assert.Equal(t, "https://docs.example.com/errors", cfg.Docs.BaseURL)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `
[docs]
base_url = "https://docs.example.com/errors"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level, "unset sections keep defaults")
	assert.Equal(t, "reportdemo.log", cfg.Logging.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeSettings(t, `
[logging]
level = "info"
`)
	t.Setenv("REPORTDEMO_LOG_LEVEL", "error")
	t.Setenv("REPORTDEMO_DOCS_URL", "https://override.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "https://override.example.com", cfg.Docs.BaseURL)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("unknown level", func(t *testing.T) {
		_, err := Load(writeSettings(t, `
[logging]
level = "loud"
`))
		assert.ErrorContains(t, err, "unknown log level")
	})

	t.Run("non-http docs url", func(t *testing.T) {
		_, err := Load(writeSettings(t, `
[docs]
base_url = "ftp://docs.example.com"
`))
		assert.ErrorContains(t, err, "must be http(s)")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeSettings(t, `[logging`))
		assert.ErrorContains(t, err, "parsing")
	})
}
