package dns

import (
	"fmt"

	"github.com/oinkbase/porkbun"
	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/spf13/cobra"
)

// GetCommand returns the "dns get" subcommand.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <domain> <id>",
		Short: "Show a single DNS record",
		Long: `Show a DNS record by its ID.

Example:
  oink dns get example.com 106926659`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			rec, err := client.DNS.Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}

			printRecords(cmd, []porkbun.Record{*rec})
			if rec.Notes != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "notes: %s\n", rec.Notes)
			}
			return nil
		},
	}
}
