package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the ownership-watch CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ownership-watch",
		Short: "Monitor SEC and Frankfurt disclosure feeds for ownership events",
		Long: `ownership-watch polls the SEC current-filings feed and the
Börse Frankfurt news feed, normalizes ownership disclosures into one
event stream, and maintains a deduplicated, bounded event ledger across
runs.`,
	}

	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
