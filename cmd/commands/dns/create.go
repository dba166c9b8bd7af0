package dns

import (
	"fmt"

	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "dns create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Create a DNS record",
		Long: `Create a DNS record on the given domain.

Examples:
  oink dns create example.com --type A --name www --content 1.2.3.4
  oink dns create example.com --type MX --content mail.example.com --priority 10`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			id, err := client.DNS.Create(cmd.Context(), args[0], recordOptsFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created record %s\n", id)
			return nil
		},
	}

	registerRecordFlags(cmd)
	cmd.MarkFlagRequired("content")

	return cmd
}
