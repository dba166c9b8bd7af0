// Package pricing implements the "oink pricing" command.
package pricing

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/oinkbase/porkbun"
	"github.com/oinkbase/porkbun/internal/cli"
	"github.com/oinkbase/porkbun/internal/styles"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

// NewCommand returns the "pricing" Cobra command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pricing [tld...]",
		Short: "Show TLD pricing",
		Long: `Show registration, renewal, and transfer pricing. Requires no
credentials. With TLD arguments, only those TLDs are shown.

Examples:
  oink pricing
  oink pricing com dev io`,
		SilenceUsage: true,
		RunE:         runPricing,
	}
}

func runPricing(cmd *cobra.Command, args []string) error {
	// Pricing is a public endpoint; missing credentials are fine.
	client, err := cli.NewClient(cmd)
	if err != nil {
		cfg := porkbun.NewConfig("", "")
		if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
			cfg.BaseURL = baseURL
		}
		client = porkbun.New(cfg)
	}

	var pricing map[string]porkbun.TLDPricing
	var fetchErr error

	fetch := func() {
		pricing, fetchErr = client.Pricing.Get(cmd.Context())
	}

	// The full price list is slow; show a spinner in a terminal.
	if cli.Interactive() {
		spinErr := spinner.New().
			Title("Fetching pricing...").
			Output(cmd.ErrOrStderr()).
			Action(fetch).
			Run()
		if spinErr != nil {
			return spinErr
		}
	} else {
		fetch()
	}
	if fetchErr != nil {
		return fmt.Errorf("failed to fetch pricing: %w", fetchErr)
	}

	tlds := make([]string, 0, len(pricing))
	if len(args) > 0 {
		for _, tld := range args {
			tlds = append(tlds, strings.TrimPrefix(strings.ToLower(tld), "."))
		}
	} else {
		for tld := range pricing {
			tlds = append(tlds, tld)
		}
		sort.Strings(tlds)
	}

	header := "TLD\tREGISTRATION\tRENEWAL\tTRANSFER"
	if cli.Interactive() {
		header = styles.Header.Render(header)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, header)
	for _, tld := range tlds {
		p, ok := pricing[tld]
		if !ok {
			fmt.Fprintf(w, "%s\t-\t-\t-\n", tld)
			continue
		}
		fmt.Fprintf(w, "%s\t$%s\t$%s\t$%s\n", tld, p.Registration, p.Renewal, p.Transfer)
	}
	return w.Flush()
}
