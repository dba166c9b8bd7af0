package porkbun

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig("ak", "sk")

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelay != time.Second {
		t.Errorf("RetryDelay = %v, want 1s", cfg.RetryDelay)
	}
}

func TestNewConfig_EnvFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-api-key")
	t.Setenv(EnvSecretKey, "env-secret-key")

	cfg := NewConfig("", "")
	if cfg.APIKey != "env-api-key" {
		t.Errorf("APIKey = %q, want env value", cfg.APIKey)
	}
	if cfg.SecretKey != "env-secret-key" {
		t.Errorf("SecretKey = %q, want env value", cfg.SecretKey)
	}
}

func TestNewConfig_ExplicitBeatsEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-api-key")
	t.Setenv(EnvSecretKey, "env-secret-key")

	cfg := NewConfig("explicit-ak", "explicit-sk")
	if cfg.APIKey != "explicit-ak" || cfg.SecretKey != "explicit-sk" {
		t.Errorf("explicit credentials must win over env, got %q/%q", cfg.APIKey, cfg.SecretKey)
	}
}

func TestHasCredentials(t *testing.T) {
	tests := []struct {
		apiKey, secretKey string
		want              bool
	}{
		{"ak", "sk", true},
		{"ak", "", false},
		{"", "sk", false},
		{"", "", false},
	}

	for _, tt := range tests {
		cfg := &Config{APIKey: tt.apiKey, SecretKey: tt.secretKey}
		if got := cfg.HasCredentials(); got != tt.want {
			t.Errorf("HasCredentials(%q, %q) = %v, want %v", tt.apiKey, tt.secretKey, got, tt.want)
		}
	}
}

func TestAuthBody(t *testing.T) {
	cfg := &Config{APIKey: "ak", SecretKey: "sk"}
	body := cfg.authBody()

	if body["apikey"] != "ak" || body["secretapikey"] != "sk" {
		t.Errorf("authBody = %v, want apikey/secretapikey fields", body)
	}
}
