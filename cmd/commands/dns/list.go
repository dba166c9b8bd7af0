package dns

import (
	"fmt"
	"strings"

	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/spf13/cobra"
)

// ListCommand returns the "dns list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <domain>",
		Short: "List DNS records for a domain",
		Long: `List all DNS records for the given domain.

Examples:
  oink dns list example.com
  oink dns list example.com --type A`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runList,
	}

	cmd.Flags().String("type", "", "Filter records by type (A, AAAA, CNAME, MX, TXT, etc.)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := cli.NewClient(cmd)
	if err != nil {
		return err
	}

	records, err := client.DNS.List(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if typeFilter, _ := cmd.Flags().GetString("type"); typeFilter != "" {
		filtered := records[:0]
		for _, r := range records {
			if strings.EqualFold(string(r.Type), typeFilter) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	printRecords(cmd, records)
	return nil
}
