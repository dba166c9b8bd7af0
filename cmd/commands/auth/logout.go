package auth

import (
	"fmt"

	"github.com/oinkbase/porkbun/internal/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials from the keychain",
		Long: `Remove the stored API key pair from the keychain. Safe to run when
nothing is stored.

Example:
  oink auth logout`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.Delete(auth.DefaultStore()); err != nil {
				return fmt.Errorf("failed to remove credentials: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Credentials removed.")
			return nil
		},
	}
}
