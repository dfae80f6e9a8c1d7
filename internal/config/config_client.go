package config

import (
	"time"
)

// Client defaults used when neither environment nor flags set a value.
const (
	DefaultClientAddress        = "http://localhost:8000"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ClientAdapter configures the HTTP client of the notes API.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server. A missing scheme means http.
	// Env: NOTES_ADDRESS
	HTTPAddress string `env:"NOTES_ADDRESS"`

	// RequestTimeout bounds a single request including retries.
	// Env: NOTES_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"NOTES_REQUEST_TIMEOUT"`
}

// GetClientAdapterConfig returns the client configuration from defaults,
// an optional .env file and the environment. Command-line flags are applied
// by the caller on top of the result.
func GetClientAdapterConfig() (*ClientAdapter, error) {
	cfg := &ClientAdapter{
		HTTPAddress:    DefaultClientAddress,
		RequestTimeout: DefaultClientRequestTimeout,
	}

	if err := loadDotEnv(defaultDotEnvFile); err != nil {
		return nil, err
	}

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
