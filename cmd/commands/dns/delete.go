package dns

import (
	"fmt"

	"github.com/oinkbase/porkbun"
	"github.com/oinkbase/porkbun/internal/cli"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// DeleteCommand returns the "dns delete" subcommand.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <domain>",
		Short: "Delete DNS records",
		Long: `Delete a DNS record by ID, or all records matching a type and
subdomain. When run in a terminal, asks for confirmation first.

Examples:
  oink dns delete example.com --id 106926659
  oink dns delete example.com --type TXT --name _acme-challenge
  oink dns delete example.com --type A --yes`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runDelete,
	}

	cmd.Flags().String("id", "", "Record ID to delete")
	cmd.Flags().String("type", "", "Delete all records of this type (with --name for a subdomain)")
	cmd.Flags().String("name", "", "Subdomain to match, empty for the zone root")
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	domain := args[0]
	id, _ := cmd.Flags().GetString("id")
	typ, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	if (id == "") == (typ == "") {
		return fmt.Errorf("exactly one of --id or --type is required")
	}

	var what string
	if id != "" {
		what = fmt.Sprintf("record %s on %s", id, domain)
	} else if name != "" {
		what = fmt.Sprintf("all %s records for %s.%s", typ, name, domain)
	} else {
		what = fmt.Sprintf("all root %s records on %s", typ, domain)
	}

	if !skipConfirm && cli.Interactive() {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %s?", what)).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.ErrOrStderr(), "Deletion cancelled.")
			return nil
		}
	}

	client, err := cli.NewClient(cmd)
	if err != nil {
		return err
	}

	if id != "" {
		err = client.DNS.Delete(cmd.Context(), domain, id)
	} else {
		err = client.DNS.DeleteByNameType(cmd.Context(), domain, porkbun.RecordType(typ), name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", what)
	return nil
}
