package porkbun

import (
	"context"
	"log/slog"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the production Porkbun API v3 endpoint.
	DefaultBaseURL = "https://api.porkbun.com/api/json/v3"

	// EnvAPIKey and EnvSecretKey are the environment variables consulted
	// when credentials are not set explicitly.
	EnvAPIKey    = "PORKBUN_API_KEY"
	EnvSecretKey = "PORKBUN_SECRET_KEY"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = 1 * time.Second
)

// Config holds credentials and request behavior for a Client.
// The zero value is not usable; construct with NewConfig.
type Config struct {
	// APIKey and SecretKey are the Porkbun API credentials. Both are
	// embedded in the body of every authenticated request.
	APIKey    string
	SecretKey string

	// BaseURL is the API endpoint without a trailing slash.
	BaseURL string

	// Timeout is the per-request timeout applied to the HTTP client.
	Timeout time.Duration

	// MaxRetries is the number of additional attempts after the first
	// for transient network failures. Rate limits are never retried.
	MaxRetries int

	// RetryDelay is the backoff before the first retry; it doubles
	// after each failed attempt.
	RetryDelay time.Duration

	// Logger, when non-nil, receives debug-level request logging.
	Logger *slog.Logger

	// sleep overrides the retry backoff sleep. Nil means a real timer
	// sleep; tests inject a recording stub.
	sleep func(ctx context.Context, delay time.Duration) error
}

// NewConfig returns a Config with the given credentials and defaults for
// everything else. Empty credentials fall back to the PORKBUN_API_KEY and
// PORKBUN_SECRET_KEY environment variables.
func NewConfig(apiKey, secretKey string) *Config {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if secretKey == "" {
		secretKey = os.Getenv(EnvSecretKey)
	}
	return &Config{
		APIKey:     apiKey,
		SecretKey:  secretKey,
		BaseURL:    DefaultBaseURL,
		Timeout:    defaultTimeout,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// HasCredentials reports whether both keys are set.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.SecretKey != ""
}

// authBody returns the credential fields merged into every authenticated
// request body. It is a pure function of the config.
func (c *Config) authBody() map[string]any {
	return map[string]any{
		"apikey":       c.APIKey,
		"secretapikey": c.SecretKey,
	}
}
