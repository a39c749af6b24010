package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lecturescribe/internal/app/stt"
	"lecturescribe/internal/app/stt/httpstt"
	"lecturescribe/internal/app/stt/openaistt"
)

func TestNew_HTTPProvider(t *testing.T) {
	p, err := New(stt.ProviderConfig{
		Type:    "http",
		BaseURL: "https://speech.example.com",
		APIKey:  "token",
	})
	require.NoError(t, err)
	assert.IsType(t, &httpstt.Client{}, p)
}

func TestNew_HTTPRequiresBaseURL(t *testing.T) {
	_, err := New(stt.ProviderConfig{Type: "http"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestNew_OpenAIProvider(t *testing.T) {
	p, err := New(stt.ProviderConfig{Type: "openai", APIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &openaistt.Provider{}, p)
}

func TestNew_OpenAIRequiresAPIKey(t *testing.T) {
	_, err := New(stt.ProviderConfig{Type: "openai"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(stt.ProviderConfig{Type: "morse"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider type")
}
