package domains

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "domains" Cobra command with all
// subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "Manage domains in your account",
		Long:  `List domains, manage nameserver delegation, and check availability.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(NameserversCommand())
	cmd.AddCommand(SetNameserversCommand())
	cmd.AddCommand(CheckCommand())

	return cmd
}
