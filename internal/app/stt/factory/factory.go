// Package factory builds concrete speech providers from configuration.
package factory

import (
	"fmt"

	"lecturescribe/internal/app/stt"
	"lecturescribe/internal/app/stt/httpstt"
	"lecturescribe/internal/app/stt/openaistt"
)

// New constructs the provider described by the given entry.
func New(config stt.ProviderConfig) (stt.Provider, error) {
	switch config.Type {
	case "http":
		if config.BaseURL == "" {
			return nil, fmt.Errorf("http provider requires base_url")
		}
		return httpstt.NewClient(httpstt.Config{
			BaseURL:     config.BaseURL,
			BearerToken: config.APIKey,
			Timeout:     config.Timeout,
			Language:    config.Language,
		}), nil
	case "openai":
		if config.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires api_key")
		}
		return openaistt.NewProvider(openaistt.Config{
			APIKey:  config.APIKey,
			BaseURL: config.BaseURL,
			Model:   config.Model,
			Timeout: config.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", config.Type)
	}
}

// NewDefault constructs the default provider of a providers config.
func NewDefault(config *stt.ProvidersConfig) (stt.Provider, error) {
	_, def := config.Default()
	return New(def)
}
