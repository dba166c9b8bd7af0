package domains

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/oinkbase/porkbun"
	"github.com/oinkbase/porkbun/internal/cli"
	"github.com/oinkbase/porkbun/internal/styles"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ListCommand returns the "domains list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains in your account",
		Long: `List all domains in the account with their status and expiry.

With --nameservers, the delegation for every domain is fetched
concurrently and shown in an extra column.

Examples:
  oink domains list
  oink domains list --nameservers`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runList,
	}

	cmd.Flags().Bool("nameservers", false, "Also show each domain's nameservers")
	cmd.Flags().Bool("labels", false, "Also show domain labels")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := cli.NewClient(cmd)
	if err != nil {
		return err
	}

	withLabels, _ := cmd.Flags().GetBool("labels")
	domains, err := client.Domains.List(cmd.Context(), porkbun.ListDomainsOpts{
		IncludeLabels: withLabels,
	})
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}

	if len(domains) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No domains found.")
		return nil
	}

	withNS, _ := cmd.Flags().GetBool("nameservers")
	nameservers := make([]string, len(domains))
	if withNS {
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(8)
		for i, d := range domains {
			g.Go(func() error {
				ns, err := client.Domains.GetNameservers(ctx, d.Domain)
				if err != nil {
					return fmt.Errorf("nameservers for %s: %w", d.Domain, err)
				}
				nameservers[i] = strings.Join(ns, ",")
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	interactive := cli.Interactive()

	header := "DOMAIN\tSTATUS\tEXPIRES"
	if withNS {
		header += "\tNAMESERVERS"
	}
	if withLabels {
		header += "\tLABELS"
	}
	if interactive {
		header = styles.Header.Render(header)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, header)

	for i, d := range domains {
		status := d.Status
		if interactive {
			status = styles.DomainStatus(status)
		}

		expires := ""
		if !d.ExpireDate.IsZero() {
			expires = d.ExpireDate.Format("2006-01-02")
		}

		row := fmt.Sprintf("%s\t%s\t%s", d.Domain, status, expires)
		if withNS {
			row += "\t" + nameservers[i]
		}
		if withLabels {
			titles := make([]string, 0, len(d.Labels))
			for _, l := range d.Labels {
				titles = append(titles, l.Title)
			}
			row += "\t" + strings.Join(titles, ",")
		}
		fmt.Fprintln(w, row)
	}
	return w.Flush()
}
