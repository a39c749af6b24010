package stt

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ProvidersConfig is the on-disk description of the available speech
// providers. Values may reference environment variables as ${VAR}.
type ProvidersConfig struct {
	DefaultProvider string                    `yaml:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig configures a single speech provider entry.
type ProviderConfig struct {
	Type     string        `yaml:"type"`
	Enabled  bool          `yaml:"enabled"`
	BaseURL  string        `yaml:"base_url,omitempty"`
	APIKey   string        `yaml:"api_key,omitempty"`
	Model    string        `yaml:"model,omitempty"`
	Language string        `yaml:"language,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// LoadProvidersConfig reads and validates a providers YAML file. Environment
// references in string values are expanded before validation, so a file can
// say api_key: ${SPEECH_API_KEY} and keep the secret out of the repo.
func LoadProvidersConfig(path string) (*ProvidersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read providers config: %w", err)
	}

	expanded := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})

	var config ProvidersConfig
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("parse providers config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks that the default provider exists, is enabled, and that
// every entry names a known type.
func (c *ProvidersConfig) Validate() error {
	if len(c.Providers) == 0 {
		return fmt.Errorf("providers config: no providers defined")
	}
	if c.DefaultProvider == "" {
		return fmt.Errorf("providers config: default_provider is required")
	}
	def, ok := c.Providers[c.DefaultProvider]
	if !ok {
		return fmt.Errorf("providers config: default_provider %q is not defined", c.DefaultProvider)
	}
	if !def.Enabled {
		return fmt.Errorf("providers config: default_provider %q is disabled", c.DefaultProvider)
	}
	for name, p := range c.Providers {
		switch p.Type {
		case "http", "openai":
		default:
			return fmt.Errorf("providers config: provider %q has unknown type %q", name, p.Type)
		}
	}
	return nil
}

// Default returns the configuration of the default provider.
func (c *ProvidersConfig) Default() (string, ProviderConfig) {
	return c.DefaultProvider, c.Providers[c.DefaultProvider]
}
