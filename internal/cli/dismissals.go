package cli

import (
	"fmt"

	"crm/internal/delivery/api/router/handler"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newDismissalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dismissals",
		Short: "Manage pairs marked as not duplicates",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List dismissed pairs, newest first",
		Args:  cobra.NoArgs,
		RunE:  WithApp(runDismissalsList),
	}
	list.Flags().String("customer", "", "Only pairs containing this customer")

	add := &cobra.Command{
		Use:   "add <customer-a-id> <customer-b-id>",
		Short: "Mark a pair as not duplicates",
		Args:  cobra.ExactArgs(2),
		RunE:  WithApp(runDismissalsAdd),
	}
	add.Flags().String("reason", "", "Why the pair is not a duplicate")

	remove := &cobra.Command{
		Use:     "remove <customer-a-id> <customer-b-id>",
		Aliases: []string{"rm"},
		Short:   "Let a dismissed pair be detected again",
		Args:    cobra.ExactArgs(2),
		RunE:    WithApp(runDismissalsRemove),
	}

	cmd.AddCommand(list, add, remove)

	return cmd
}

func runDismissalsList(app *App, cmd *cobra.Command, _ []string) error {
	actor, err := actorFromFlags(cmd, false)
	if err != nil {
		return err
	}

	var customerID *uuid.UUID
	if raw, _ := cmd.Flags().GetString("customer"); raw != "" {
		id, err := uuidFlag(cmd, "customer")
		if err != nil {
			return err
		}
		customerID = &id
	}

	entries, err := app.DismissalUC.ListDismissed(cmd.Context(), actor, customerID)
	if err != nil {
		return err
	}

	if wantsJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), handler.MapSlice(entries, handler.ToDismissalEntryResponse))
	}

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			e.Dismissal.DismissedAt.Format("2006-01-02 15:04"),
			e.CustomerA.ID,
			e.CustomerA.Name,
			e.CustomerB.ID,
			e.CustomerB.Name,
			e.Dismissal.Reason,
		})
	}

	return writeTable(cmd.OutOrStdout(), []any{"DISMISSED", "CUSTOMER A", "NAME", "CUSTOMER B", "NAME", "REASON"}, rows)
}

func runDismissalsAdd(app *App, cmd *cobra.Command, args []string) error {
	actor, err := actorFromFlags(cmd, true)
	if err != nil {
		return err
	}
	a, b, err := parsePairArgs(args)
	if err != nil {
		return err
	}
	reason, _ := cmd.Flags().GetString("reason")

	dismissal, err := app.DismissalUC.Dismiss(cmd.Context(), actor, &usecase.DismissInput{
		CustomerAID: a,
		CustomerBID: b,
		Reason:      reason,
	})
	if err != nil {
		return err
	}

	if wantsJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), handler.ToDismissalResponse(dismissal))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Dismissed %s / %s\n", dismissal.Pair.A, dismissal.Pair.B)

	return nil
}

func runDismissalsRemove(app *App, cmd *cobra.Command, args []string) error {
	actor, err := actorFromFlags(cmd, true)
	if err != nil {
		return err
	}
	a, b, err := parsePairArgs(args)
	if err != nil {
		return err
	}

	if err := app.DismissalUC.Undismiss(cmd.Context(), actor, a, b); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed dismissal %s / %s\n", a, b)

	return nil
}

func parsePairArgs(args []string) (uuid.UUID, uuid.UUID, error) {
	a, err := parseUUIDArg(args, 0, "customer")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	b, err := parseUUIDArg(args, 1, "customer")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return a, b, nil
}
