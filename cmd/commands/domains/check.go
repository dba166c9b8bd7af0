package domains

import (
	"fmt"

	"github.com/oinkbase/porkbun/internal/cli"
	"github.com/oinkbase/porkbun/internal/styles"

	"github.com/spf13/cobra"
)

// CheckCommand returns the "domains check" subcommand.
func CheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <domain>",
		Short: "Check whether a domain is available",
		Long: `Check domain availability and registration pricing.

This API endpoint is heavily rate limited; expect throttling when
checking many names.

Example:
  oink domains check example.com`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			avail, err := client.Domains.Check(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to check availability: %w", err)
			}

			verdict := "taken"
			if avail.Available {
				verdict = "available"
			}
			if cli.Interactive() {
				verdict = styles.Availability(avail.Available)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], verdict)

			if avail.Available {
				fmt.Fprintf(cmd.OutOrStdout(), "  price: $%s", avail.Price)
				if avail.Premium {
					fmt.Fprint(cmd.OutOrStdout(), " (premium)")
				}
				fmt.Fprintln(cmd.OutOrStdout())
				if avail.Renewal != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "  renewal: $%s\n", avail.Renewal.Price)
				}
				if avail.Transfer != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "  transfer: $%s\n", avail.Transfer.Price)
				}
			}
			return nil
		},
	}
}
