// Package cli implements crmadm, the operator command line for schema
// migrations, duplicate review and merge history.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crmadm",
		Short: "Administer customer deduplication and merges",
		Long: `crmadm runs schema migrations, reviews duplicate customers and
inspects or undoes merges directly against the database.

Tenant scoped commands need --tenant; commands that change data also need
--operator, which is recorded as the acting staff member.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("tenant", "", "Tenant id to operate on")
	cmd.PersistentFlags().String("operator", "", "Operator id recorded as the actor")
	cmd.PersistentFlags().String("operator-name", "", "Operator display name")
	cmd.PersistentFlags().Bool("json", false, "Output as JSON")

	cmd.AddCommand(
		newMigrateCmd(),
		newDuplicatesCmd(),
		newDismissalsCmd(),
		newMergesCmd(),
		newTokenCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
