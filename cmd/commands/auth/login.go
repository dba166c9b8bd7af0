package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/oinkbase/porkbun/internal/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the API key pair in the keychain",
		Long: `Store the Porkbun API key and secret key in the local keychain.

Keys are prompted for when not passed as flags; the secret is read
without echo.

Example:
  oink auth login`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, _ := cmd.Flags().GetString("api-key")
			secretKey, _ := cmd.Flags().GetString("secret-key")

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Enter API key: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				apiKey = strings.TrimSpace(string(bytes))
			}

			secretKey = strings.TrimSpace(secretKey)
			if secretKey == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Enter secret API key: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				secretKey = strings.TrimSpace(string(bytes))
			}

			if apiKey == "" || secretKey == "" {
				return fmt.Errorf("both keys are required")
			}

			store := auth.DefaultStore()
			if err := auth.Save(store, auth.Credentials{APIKey: apiKey, SecretKey: secretKey}); err != nil {
				return fmt.Errorf("failed to store credentials: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Credentials saved to keychain.")
			return nil
		},
	}

	return cmd
}
