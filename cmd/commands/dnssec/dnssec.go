package dnssec

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/oinkbase/porkbun"
	"github.com/oinkbase/porkbun/internal/cli"
	"github.com/oinkbase/porkbun/internal/styles"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "dnssec" Cobra command with all
// subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnssec",
		Short: "Manage DNSSEC DS records at the registry",
		Long:  `List, publish, and remove DS records for domains signed externally.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

// ListCommand returns the "dnssec list" subcommand.
func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <domain>",
		Short: "List DS records at the registry",
		Long: `List the DS records published at the registry for a domain.

Example:
  oink dnssec list example.com`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			records, err := client.DNSSEC.List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list DNSSEC records: %w", err)
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No DS records found.")
				return nil
			}

			keyTags := make([]string, 0, len(records))
			for tag := range records {
				keyTags = append(keyTags, tag)
			}
			sort.Strings(keyTags)

			header := "KEY TAG\tALG\tDIGEST TYPE\tDIGEST"
			if cli.Interactive() {
				header = styles.Header.Render(header)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, header)
			for _, tag := range keyTags {
				r := records[tag]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.KeyTag, r.Algorithm, r.DigestType, r.Digest)
			}
			return w.Flush()
		},
	}
}

// CreateCommand returns the "dnssec create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Publish a DS record at the registry",
		Long: `Publish a DS record for an externally signed domain.

Example:
  oink dnssec create example.com --key-tag 64087 --alg 13 --digest-type 2 --digest 15E4...`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			opts := porkbun.CreateDNSSECOpts{}
			opts.KeyTag, _ = cmd.Flags().GetString("key-tag")
			opts.Algorithm, _ = cmd.Flags().GetString("alg")
			opts.DigestType, _ = cmd.Flags().GetString("digest-type")
			opts.Digest, _ = cmd.Flags().GetString("digest")
			opts.MaxSigLife, _ = cmd.Flags().GetString("max-sig-life")

			if err := client.DNSSEC.Create(cmd.Context(), args[0], opts); err != nil {
				return fmt.Errorf("failed to create DNSSEC record: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Published DS record (key tag %s)\n", opts.KeyTag)
			return nil
		},
	}

	cmd.Flags().String("key-tag", "", "DS key tag")
	cmd.Flags().String("alg", "", "DNSSEC algorithm number")
	cmd.Flags().String("digest-type", "", "Digest type number")
	cmd.Flags().String("digest", "", "Digest of the DNSKEY record")
	cmd.Flags().String("max-sig-life", "", "Signature lifetime in seconds (optional)")
	cmd.MarkFlagRequired("key-tag")
	cmd.MarkFlagRequired("alg")
	cmd.MarkFlagRequired("digest-type")
	cmd.MarkFlagRequired("digest")

	return cmd
}

// DeleteCommand returns the "dnssec delete" subcommand.
func DeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain> <key-tag>",
		Short: "Remove a DS record from the registry",
		Long: `Remove the DS record with the given key tag.

Example:
  oink dnssec delete example.com 64087`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.NewClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DNSSEC.Delete(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to delete DNSSEC record: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed DS record %s\n", args[1])
			return nil
		},
	}
}
