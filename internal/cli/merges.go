package cli

import (
	"fmt"

	"crm/internal/delivery/api/router/handler"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newMergesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merges",
		Short: "Inspect and undo customer merges",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the merge history of a tenant, newest first",
		Long: `List the merge history of a tenant, newest first.

Examples:
  crmadm merges list --tenant 0d3a...
  crmadm merges list --tenant 0d3a... --customer 6b1f... --status undone`,
		Args: cobra.NoArgs,
		RunE: WithApp(runMergesList),
	}
	list.Flags().String("customer", "", "Only merges involving this customer")
	list.Flags().String("status", "", "Only merges in this status (completed or undone)")
	list.Flags().Int("limit", 50, "Maximum number of merges to list")
	list.Flags().Int("offset", 0, "Number of merges to skip")

	show := &cobra.Command{
		Use:   "show <merge-id>",
		Short: "Show a merge record and the change it made to the primary",
		Args:  cobra.ExactArgs(1),
		RunE:  WithApp(runMergesShow),
	}

	undo := &cobra.Command{
		Use:   "undo <merge-id>",
		Short: "Undo a completed merge",
		Long: `Undo a completed merge by restoring both customers from the merge
record and moving the related records back. A merge can be undone once.`,
		Args: cobra.ExactArgs(1),
		RunE: WithApp(runMergesUndo),
	}

	cmd.AddCommand(list, show, undo)

	return cmd
}

func runMergesList(app *App, cmd *cobra.Command, _ []string) error {
	actor, err := actorFromFlags(cmd, false)
	if err != nil {
		return err
	}

	filter, err := mergeFilterFromFlags(cmd)
	if err != nil {
		return err
	}

	summaries, err := app.MergeUC.ListMerges(cmd.Context(), actor, filter)
	if err != nil {
		return err
	}

	if wantsJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), handler.MapSlice(summaries, handler.ToMergeSummaryResponse))
	}

	rows := make([][]any, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []any{
			s.Record.ID,
			s.Record.PerformedAt.Format("2006-01-02 15:04"),
			s.Record.Status,
			s.PrimaryName,
			s.SecondaryName,
			s.Record.MovedRecords.Total(),
		})
	}

	return writeTable(cmd.OutOrStdout(), []any{"MERGE", "PERFORMED", "STATUS", "PRIMARY", "SECONDARY", "MOVED"}, rows)
}

func mergeFilterFromFlags(cmd *cobra.Command) (repository.MergeRecordFilter, error) {
	var filter repository.MergeRecordFilter

	if raw, _ := cmd.Flags().GetString("customer"); raw != "" {
		id, err := uuidFlag(cmd, "customer")
		if err != nil {
			return filter, err
		}
		filter.CustomerID = &id
	}

	status, _ := cmd.Flags().GetString("status")
	switch entity.MergeStatus(status) {
	case "", entity.MergeStatusCompleted, entity.MergeStatusUndone:
		filter.Status = entity.MergeStatus(status)
	default:
		return filter, errors.Errorf("invalid --status %q: want completed or undone", status)
	}

	filter.Limit, _ = cmd.Flags().GetInt("limit")
	filter.Offset, _ = cmd.Flags().GetInt("offset")
	if filter.Limit < 0 || filter.Offset < 0 {
		return filter, errors.New("--limit and --offset must not be negative")
	}

	return filter, nil
}

func runMergesShow(app *App, cmd *cobra.Command, args []string) error {
	actor, err := actorFromFlags(cmd, false)
	if err != nil {
		return err
	}
	mergeID, err := parseUUIDArg(args, 0, "merge")
	if err != nil {
		return err
	}

	detail, err := app.MergeUC.GetMerge(cmd.Context(), actor, mergeID)
	if err != nil {
		return err
	}

	if wantsJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), handler.ToMergeDetailResponse(detail))
	}

	out := cmd.OutOrStdout()
	record := detail.Record
	fmt.Fprintf(out, "Merge      %s (%s)\n", record.ID, record.Status)
	fmt.Fprintf(out, "Primary    %s %s\n", record.PrimaryID, detail.PrimaryName)
	fmt.Fprintf(out, "Secondary  %s %s\n", record.SecondaryID, detail.SecondaryName)
	fmt.Fprintf(out, "Performed  %s by %s\n", record.PerformedAt.Format("2006-01-02 15:04:05"), record.PerformedBy)
	if record.UndoneAt != nil && record.UndoneBy != nil {
		fmt.Fprintf(out, "Undone     %s by %s\n", record.UndoneAt.Format("2006-01-02 15:04:05"), *record.UndoneBy)
	}
	if record.Reason != "" {
		fmt.Fprintf(out, "Reason     %s\n", record.Reason)
	}
	if record.SeveredLineID != "" {
		fmt.Fprintf(out, "LINE       %s dropped from the %s\n", record.SeveredLineID, record.SeveredLineSide)
	}
	for _, entityType := range entity.RelatedEntityTypes() {
		if ids := record.MovedRecords[entityType]; len(ids) > 0 {
			fmt.Fprintf(out, "Moved      %d %s\n", len(ids), entityType)
		}
	}
	if detail.PrimaryDiff != "" {
		fmt.Fprintln(out)
		fmt.Fprint(out, detail.PrimaryDiff)
	}

	return nil
}

func runMergesUndo(app *App, cmd *cobra.Command, args []string) error {
	actor, err := actorFromFlags(cmd, true)
	if err != nil {
		return err
	}
	mergeID, err := parseUUIDArg(args, 0, "merge")
	if err != nil {
		return err
	}

	record, err := app.MergeUC.Undo(cmd.Context(), actor, mergeID)
	if err != nil {
		return err
	}

	if wantsJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), handler.ToMergeRecordResponse(record))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Undid merge %s: %s restored, %d related records moved back\n",
		record.ID, record.SecondaryID, record.MovedRecords.Total())

	return nil
}
