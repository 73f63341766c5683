// Package config loads the optional TOML settings file for reportdemo.
// Every field has a default so a missing file still yields a runnable
// configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "reportdemo.toml"

// Settings is the demo configuration tree.
type Settings struct {
	Logging Logging `toml:"logging"`
	Docs    Docs    `toml:"docs"`
}

// Logging configures the two process loggers.
type Logging struct {
	// Level applies to both loggers: debug|info|warn|error.
	Level string `toml:"level"`
	// File is the JSON projection sink target; "stderr" and "stdout" are
	// recognized as streams.
	File string `toml:"file"`
}

// Docs configures documentation link derivation.
type Docs struct {
	// BaseURL overrides the compiled-in documentation base when set.
	BaseURL string `toml:"base_url"`
}

// Default returns the settings used when no file or override supplies them.
func Default() Settings {
	return Settings{
		Logging: Logging{Level: "info", File: "reportdemo.log"},
	}
}

// Load reads settings from path. An empty path falls back to DefaultPath,
// and a missing default file is not an error; an explicitly named file must
// exist. Environment variables REPORTDEMO_LOG_LEVEL and REPORTDEMO_DOCS_URL
// override whatever the file said.
func Load(path string) (Settings, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// run on defaults
	default:
		return Settings{}, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Settings) {
	if v := os.Getenv("REPORTDEMO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("REPORTDEMO_DOCS_URL"); v != "" {
		cfg.Docs.BaseURL = v
	}
}

// Validate rejects values the rest of the program cannot act on.
func (s Settings) Validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", s.Logging.Level)
	}
	if u := s.Docs.BaseURL; u != "" &&
		!strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return fmt.Errorf("docs base url must be http(s), got %q", u)
	}
	return nil
}
