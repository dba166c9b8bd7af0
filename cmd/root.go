package cmd

import (
	"os"

	authcmd "github.com/oinkbase/porkbun/cmd/commands/auth"
	"github.com/oinkbase/porkbun/cmd/commands/dns"
	"github.com/oinkbase/porkbun/cmd/commands/dnssec"
	"github.com/oinkbase/porkbun/cmd/commands/domains"
	"github.com/oinkbase/porkbun/cmd/commands/ping"
	"github.com/oinkbase/porkbun/cmd/commands/pricing"
	"github.com/oinkbase/porkbun/cmd/commands/ssl"
	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oink",
		Short: "A CLI for the Porkbun domain registrar and DNS API",
		Long: `oink is a command-line client for the Porkbun API. It manages DNS
records, domains, nameservers, DNSSEC, SSL bundles, and pricing lookups.

Credentials resolve from --api-key/--secret-key flags, then the
PORKBUN_API_KEY and PORKBUN_SECRET_KEY environment variables, then the
OS keychain.

Quick start:
  oink auth login                  # Store your API key pair
  oink ping                        # Verify credentials
  oink dns list example.com        # List DNS records
  oink domains list                # List domains in your account`,
	}

	cli.RegisterFlags(cmd)

	cmd.AddCommand(authcmd.NewCommand())
	cmd.AddCommand(ping.NewCommand())
	cmd.AddCommand(dns.NewCommand())
	cmd.AddCommand(domains.NewCommand())
	cmd.AddCommand(dnssec.NewCommand())
	cmd.AddCommand(ssl.NewCommand())
	cmd.AddCommand(pricing.NewCommand())

	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
