package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long: `Migrations are embedded in the binary and tracked in the
schema_migrations table. Applying them is safe to repeat.`,
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: WithApp(func(app *App, cmd *cobra.Command, _ []string) error {
			if err := app.Migrator.Up(cmd.Context()); err != nil {
				return err
			}

			return printVersion(app, cmd, nil)
		}),
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: WithApp(func(app *App, cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if err := app.Migrator.Down(cmd.Context(), steps); err != nil {
				return err
			}

			return printVersion(app, cmd, nil)
		}),
	}
	down.Flags().Int("steps", 1, "Number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Show the applied schema version",
		Args:  cobra.NoArgs,
		RunE:  WithApp(printVersion),
	}

	cmd.AddCommand(up, down, version)

	return cmd
}

func printVersion(app *App, cmd *cobra.Command, _ []string) error {
	version, dirty, err := app.Migrator.Version(cmd.Context())
	if err != nil {
		return err
	}

	if wantsJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), map[string]any{"version": version, "dirty": dirty})
	}

	state := "clean"
	if dirty {
		state = "dirty"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s)\n", version, state)

	return nil
}
