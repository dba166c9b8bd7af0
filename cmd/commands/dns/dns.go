package dns

import (
	"fmt"
	"text/tabwriter"

	"github.com/oinkbase/porkbun"
	"github.com/oinkbase/porkbun/internal/cli"
	"github.com/oinkbase/porkbun/internal/styles"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "dns" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records",
		Long:  `Create, list, edit, and delete DNS records for domains in your account.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(EditCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

// printRecords writes records as a table, with styled headers when stdout
// is a terminal.
func printRecords(cmd *cobra.Command, records []porkbun.Record) {
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		return
	}

	header := "ID\tNAME\tTYPE\tCONTENT\tTTL\tPRIO"
	if cli.Interactive() {
		header = styles.Header.Render(header)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, header)

	for _, r := range records {
		prio := ""
		if r.Priority > 0 {
			prio = fmt.Sprintf("%d", r.Priority)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Name, string(r.Type), r.Content, r.TTL, prio)
	}
	w.Flush()
}

// recordOptsFromFlags builds CreateRecordOpts from the shared record flags.
func recordOptsFromFlags(cmd *cobra.Command) porkbun.CreateRecordOpts {
	typ, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	content, _ := cmd.Flags().GetString("content")
	ttl, _ := cmd.Flags().GetInt("ttl")
	priority, _ := cmd.Flags().GetInt("priority")
	notes, _ := cmd.Flags().GetString("notes")

	return porkbun.CreateRecordOpts{
		Name:     name,
		Type:     porkbun.RecordType(typ),
		Content:  content,
		TTL:      ttl,
		Priority: priority,
		Notes:    notes,
	}
}

// registerRecordFlags attaches the record field flags shared by create and edit.
func registerRecordFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "Record type (A, AAAA, CNAME, MX, TXT, ...)")
	cmd.Flags().String("name", "", "Subdomain, empty for the zone root")
	cmd.Flags().String("content", "", "Record content")
	cmd.Flags().Int("ttl", 0, "TTL in seconds (default 600, minimum 600)")
	cmd.Flags().Int("priority", 0, "Priority for MX/SRV records")
	cmd.Flags().String("notes", "", "Free-form notes on the record")
	cmd.MarkFlagRequired("type")
}
