package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newDuplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates <customer-id>",
		Short: "List likely duplicates of a customer",
		Long: `List the customers that likely represent the same person, highest
confidence first. Merged customers and dismissed pairs are excluded.

Examples:
  crmadm duplicates 6b1f... --tenant 0d3a...
  crmadm duplicates 6b1f... --tenant 0d3a... --json`,
		Args: cobra.ExactArgs(1),
		RunE: WithApp(runDuplicates),
	}
}

func runDuplicates(app *App, cmd *cobra.Command, args []string) error {
	actor, err := actorFromFlags(cmd, false)
	if err != nil {
		return err
	}
	customerID, err := parseUUIDArg(args, 0, "customer")
	if err != nil {
		return err
	}

	matches, err := app.DuplicateUC.FindDuplicates(cmd.Context(), actor, customerID)
	if err != nil {
		return err
	}

	if wantsJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), matches)
	}

	rows := make([][]any, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []any{m.Candidate.ID, m.Candidate.Name, m.Confidence, m.Likelihood, strings.Join(m.Signals, ", ")})
	}

	return writeTable(cmd.OutOrStdout(), []any{"CANDIDATE", "NAME", "CONFIDENCE", "LIKELIHOOD", "SIGNALS"}, rows)
}
