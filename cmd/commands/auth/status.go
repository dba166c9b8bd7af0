package auth

import (
	"errors"
	"fmt"

	"github.com/oinkbase/porkbun/internal/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether credentials are stored",
		Long: `Show whether an API key pair is stored in the keychain.

Example:
  oink auth status`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			_, err := auth.Load(store)
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			case errors.Is(err, auth.ErrNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
			default:
				return fmt.Errorf("failed to read keychain: %w", err)
			}
			return nil
		},
	}
}
