package llm

import (
	"fmt"
	"os"
	"time"
)

// ProviderConfig holds the settings for one credential in the failover
// list.
type ProviderConfig struct {
	// Provider selects the backend.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string `yaml:"provider"`

	APIKey string `yaml:"api_key"`

	// Model is a friendly name ("gemini-flash") or a direct model ID.
	Model string `yaml:"model"`

	// BaseURL overrides the endpoint for OpenAI-compatible APIs.
	BaseURL string `yaml:"base_url"`
}

// Config holds all generation configuration.
type Config struct {
	// Credentials is the ordered failover list. The first credential is
	// tried first; rate-limit and auth failures advance down the list.
	Credentials []ProviderConfig `yaml:"credentials"`

	// FailoverBackoff is the fixed wait between credentials.
	// Default: 2s.
	FailoverBackoff time.Duration `yaml:"failover_backoff"`

	// Timeout is the maximum duration for a single generation call
	// including failover. Default: 120s; generation can block for a while.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults and no credentials.
func DefaultConfig() Config {
	return Config{
		FailoverBackoff: 2 * time.Second,
		Timeout:         120 * time.Second,
	}
}

// defaultModels gives each backend a starting model when the config
// leaves it blank.
var defaultModels = map[string]string{
	"anthropic":  "claude-haiku",
	"openai":     "gpt-4o-mini",
	"gemini":     "gemini-flash",
	"openrouter": "google/gemini-2.0-flash-exp",
}

// DiscoverCredentials probes standard API key env vars in priority order
// (Gemini, OpenAI, Anthropic, OpenRouter) and returns a credential list
// containing every provider whose key is found. An empty result means no
// key was set.
func DiscoverCredentials() []ProviderConfig {
	var creds []ProviderConfig

	probe := []struct {
		provider string
		envVar   string
	}{
		{"gemini", "GEMINI_API_KEY"},
		{"openai", "OPENAI_API_KEY"},
		{"anthropic", "ANTHROPIC_API_KEY"},
		{"openrouter", "OPENROUTER_API_KEY"},
	}

	for _, p := range probe {
		if k := os.Getenv(p.envVar); k != "" {
			creds = append(creds, ProviderConfig{
				Provider: p.provider,
				APIKey:   k,
				Model:    defaultModels[p.provider],
			})
		}
	}

	return creds
}

// Validate checks that every credential names a known provider and, for
// non-mock providers, carries an API key.
func (c Config) Validate() error {
	if len(c.Credentials) == 0 {
		return fmt.Errorf("no generation credentials configured")
	}
	for i, cred := range c.Credentials {
		switch cred.Provider {
		case "anthropic", "openai", "gemini", "openrouter":
			if cred.APIKey == "" {
				return fmt.Errorf("credential %d (%s): API key is required", i, cred.Provider)
			}
		case "mock":
			// No API key needed.
		default:
			return fmt.Errorf("credential %d: unknown provider %q", i, cred.Provider)
		}
	}
	return nil
}

// withDefaults fills in a blank model name for the credential's backend.
func (pc ProviderConfig) withDefaults() ProviderConfig {
	if pc.Model == "" {
		pc.Model = defaultModels[pc.Provider]
	}
	return pc
}
