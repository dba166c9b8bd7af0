package dns

import (
	"fmt"

	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/spf13/cobra"
)

// EditCommand returns the "dns edit" subcommand.
func EditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <domain> <id>",
		Short: "Replace a DNS record's contents",
		Long: `Replace a DNS record by its ID. The flags describe the full new state
of the record, not a partial patch.

Example:
  oink dns edit example.com 106926659 --type A --name www --content 9.9.9.9`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DNS.Edit(cmd.Context(), args[0], args[1], recordOptsFromFlags(cmd)); err != nil {
				return fmt.Errorf("failed to edit record: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated record %s\n", args[1])
			return nil
		},
	}

	registerRecordFlags(cmd)
	cmd.MarkFlagRequired("content")

	return cmd
}
