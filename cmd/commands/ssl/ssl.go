// Package ssl implements the "oink ssl" commands.
package ssl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "ssl" Cobra command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssl",
		Short: "Retrieve SSL certificate bundles",
		Long:  `Fetch the certificate bundles Porkbun provisions for domains on its nameservers.`,
	}

	cmd.AddCommand(FetchCommand())

	return cmd
}

// FetchCommand returns the "ssl fetch" subcommand.
func FetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <domain>",
		Short: "Fetch a domain's certificate bundle",
		Long: `Fetch the certificate chain, private key, and public key for a domain.

Without --out the certificate chain is printed to stdout. With --out the
three PEM files are written to the given directory as <domain>.crt,
<domain>.key, and <domain>.pub; the key file is created mode 0600.

Examples:
  oink ssl fetch example.com
  oink ssl fetch example.com --out /etc/ssl/porkbun`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runFetch,
	}

	cmd.Flags().String("out", "", "Directory to write the PEM files to")

	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	domain := args[0]

	client, err := cli.NewClient(cmd)
	if err != nil {
		return err
	}

	bundle, err := client.SSL.Retrieve(cmd.Context(), domain)
	if err != nil {
		return fmt.Errorf("failed to retrieve SSL bundle: %w", err)
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		fmt.Fprint(cmd.OutOrStdout(), bundle.CertificateChain)
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name    string
		content string
		mode    os.FileMode
	}{
		{domain + ".crt", bundle.CertificateChain, 0o644},
		{domain + ".key", bundle.PrivateKey, 0o600},
		{domain + ".pub", bundle.PublicKey, 0o644},
	}
	for _, f := range files {
		path := filepath.Join(outDir, f.name)
		if err := os.WriteFile(path, []byte(f.content), f.mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}
