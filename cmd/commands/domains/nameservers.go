package domains

import (
	"fmt"

	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/spf13/cobra"
)

// NameserversCommand returns the "domains nameservers" subcommand.
func NameserversCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nameservers <domain>",
		Short: "Show a domain's nameservers",
		Long: `Show the authoritative nameservers for a domain.

Example:
  oink domains nameservers example.com`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			ns, err := client.Domains.GetNameservers(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get nameservers: %w", err)
			}

			for _, n := range ns {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

// SetNameserversCommand returns the "domains set-nameservers" subcommand.
func SetNameserversCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-nameservers <domain> <ns>...",
		Short: "Replace a domain's nameservers",
		Long: `Replace the domain's nameserver delegation with the given servers.

Example:
  oink domains set-nameservers example.com ns1.example.net ns2.example.net`,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			domain, ns := args[0], args[1:]
			if err := client.Domains.UpdateNameservers(cmd.Context(), domain, ns); err != nil {
				return fmt.Errorf("failed to update nameservers: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated nameservers for %s\n", domain)
			return nil
		},
	}
}
