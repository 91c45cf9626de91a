// Package config loads the application's YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"skillcheck/internal/llm"
)

// Config is the full application configuration.
type Config struct {
	// Database is the SQLite file path. Empty means the default XDG
	// location.
	Database string `yaml:"database"`

	// Generation configures the LLM credential list and failover policy.
	Generation struct {
		Credentials []llm.ProviderConfig `yaml:"credentials"`

		// FailoverBackoff is the wait between credentials as a duration
		// string, e.g. "2s".
		FailoverBackoff string `yaml:"failover_backoff"`

		// Timeout bounds one generation call including failover, e.g. "120s".
		Timeout string `yaml:"timeout"`
	} `yaml:"generation"`

	// Defaults preselects assessment parameters the CLI flags can
	// override.
	Defaults struct {
		Difficulty    string `yaml:"difficulty"`
		Category      string `yaml:"category"`
		QuestionCount int    `yaml:"question_count"`
	} `yaml:"defaults"`
}

// Load reads YAML config from path. A missing file is not an error:
// everything has a default and credentials can come from the
// environment.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return withDefaults(cfg), nil
}

// GenerationConfig converts the YAML generation section into an
// llm.Config. When the file names no credentials, the standard API key
// env vars are probed instead.
func (c Config) GenerationConfig() llm.Config {
	gen := llm.DefaultConfig()
	gen.Credentials = c.Generation.Credentials
	if len(gen.Credentials) == 0 {
		gen.Credentials = llm.DiscoverCredentials()
	}
	gen.FailoverBackoff = duration(c.Generation.FailoverBackoff, gen.FailoverBackoff)
	gen.Timeout = duration(c.Generation.Timeout, gen.Timeout)
	return gen
}

// DefaultPath returns the standard config location,
// ~/.config/skillcheck/config.yaml, honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "skillcheck", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "skillcheck", "config.yaml")
}

// duration parses a duration string or returns the fallback if empty or
// invalid.
func duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

func defaults() Config {
	var cfg Config
	cfg.Defaults.Difficulty = "medium"
	cfg.Defaults.Category = "technical"
	cfg.Defaults.QuestionCount = 5
	return cfg
}

func withDefaults(cfg Config) Config {
	d := defaults()
	if cfg.Defaults.Difficulty == "" {
		cfg.Defaults.Difficulty = d.Defaults.Difficulty
	}
	if cfg.Defaults.Category == "" {
		cfg.Defaults.Category = d.Defaults.Category
	}
	if cfg.Defaults.QuestionCount <= 0 {
		cfg.Defaults.QuestionCount = d.Defaults.QuestionCount
	}
	return cfg
}
