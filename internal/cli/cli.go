// Package cli holds the glue shared by all commands: flag registration,
// credential resolution, and terminal detection.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/oinkbase/porkbun"
	"github.com/oinkbase/porkbun/internal/auth"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RegisterFlags attaches the global credential and endpoint flags.
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("api-key", "", "Porkbun API key (overrides env and keychain)")
	cmd.PersistentFlags().String("secret-key", "", "Porkbun secret API key (overrides env and keychain)")
	cmd.PersistentFlags().String("base-url", "", "API base URL (for testing)")
}

// NewClient builds a client from the command's flags. Credentials resolve
// in order: flags, then PORKBUN_API_KEY/PORKBUN_SECRET_KEY, then the OS
// keychain.
func NewClient(cmd *cobra.Command) (*porkbun.Client, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	secretKey, _ := cmd.Flags().GetString("secret-key")

	// NewConfig falls back to the environment for empty keys.
	cfg := porkbun.NewConfig(apiKey, secretKey)

	if !cfg.HasCredentials() {
		creds, err := auth.Load(auth.DefaultStore())
		switch {
		case err == nil:
			cfg.APIKey = creds.APIKey
			cfg.SecretKey = creds.SecretKey
		case errors.Is(err, auth.ErrNotFound):
			return nil, fmt.Errorf("no credentials found: pass --api-key/--secret-key, set %s/%s, or run 'oink auth login'",
				porkbun.EnvAPIKey, porkbun.EnvSecretKey)
		default:
			return nil, fmt.Errorf("failed to read keychain: %w", err)
		}
	}

	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return porkbun.New(cfg), nil
}

// Interactive reports whether stdout is a terminal, gating styled output
// and confirmation prompts.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
