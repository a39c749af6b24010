package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from the environment.
type Config struct {
	// HTTP server
	Host         string
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Video store
	DBDriver string // "sqlite3" or "postgres"
	DBPath   string // sqlite file path
	DBDSN    string // postgres DSN

	// Staging area for in-flight runs
	StagingDir string

	// Speech-to-text provider
	SpeechServiceURL string
	SpeechAPIKey     string
	ProvidersConfig  string // optional YAML file overriding provider selection

	// Polling
	PollInterval    time.Duration
	PollMaxAttempts int

	// Per-stage deadlines
	RetrieveTimeout time.Duration
	ExtractTimeout  time.Duration
	SubmitTimeout   time.Duration

	// Object storage for s3:// source locations
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; system-wide environment still applies.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads configuration from the environment and validates required values.
// Fail-fast: returns an error immediately if critical configuration is missing
// or malformed.
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{
		Host:        envOr("HTTP_HOST", "0.0.0.0"),
		Port:        envOr("HTTP_PORT", "8080"),
		Environment: envOr("ENVIRONMENT", "development"),

		DBDriver: envOr("DB_DRIVER", "sqlite3"),
		DBPath:   envOr("DB_PATH", "data/lecturescribe.db"),
		DBDSN:    strings.TrimSpace(os.Getenv("DB_DSN")),

		StagingDir: envOr("STAGING_DIR", os.TempDir()),

		SpeechServiceURL: strings.TrimSpace(os.Getenv("SPEECH_SERVICE_URL")),
		SpeechAPIKey:     strings.TrimSpace(os.Getenv("SPEECH_API_KEY")),
		ProvidersConfig:  strings.TrimSpace(os.Getenv("PROVIDERS_CONFIG")),

		MinioEndpoint:  envOr("MINIO_ENDPOINT", ""),
		MinioAccessKey: envOr("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: envOr("MINIO_SECRET_KEY", ""),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}

	var err error
	if cfg.ReadTimeout, err = durationEnv("HTTP_READ_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = durationEnv("HTTP_WRITE_TIMEOUT", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = durationEnv("HTTP_IDLE_TIMEOUT", 120*time.Second); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = durationEnv("POLL_INTERVAL", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.PollMaxAttempts, err = intEnv("POLL_MAX_ATTEMPTS", 20); err != nil {
		return nil, err
	}
	if cfg.RetrieveTimeout, err = durationEnv("RETRIEVE_TIMEOUT", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ExtractTimeout, err = durationEnv("EXTRACT_TIMEOUT", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SubmitTimeout, err = durationEnv("SUBMIT_TIMEOUT", 2*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants shared by all commands.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite3":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required when DB_DRIVER=sqlite3")
		}
	case "postgres":
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite3 or postgres)", c.DBDriver)
	}

	if c.PollMaxAttempts <= 0 {
		return fmt.Errorf("POLL_MAX_ATTEMPTS must be positive, got %d", c.PollMaxAttempts)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %s", c.PollInterval)
	}

	return nil
}

// RequireSpeechService validates that the async speech service is configured.
// Commands that submit transcriptions call this before starting.
func (c *Config) RequireSpeechService() error {
	if c.ProvidersConfig != "" {
		return nil
	}
	if c.SpeechServiceURL == "" {
		return fmt.Errorf("SPEECH_SERVICE_URL is required - set it in environment or .env file")
	}
	if c.SpeechAPIKey == "" {
		return fmt.Errorf("SPEECH_API_KEY is required - set it in environment or .env file")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
