// Package ping implements the "oink ping" connectivity check.
package ping

import (
	"fmt"

	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Verify connectivity and credentials",
		Long: `Ping the API with the configured credentials and print the public IP
the API sees you from.

Example:
  oink ping`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "pong! your IP: %s\n", resp.YourIP)
			return nil
		},
	}
}
