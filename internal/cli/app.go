package cli

import (
	"context"
	"log/slog"
	"os"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/domain/lifecycle"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence/migration"
	"crm/internal/infra/persistence/postgres"
	"crm/internal/infra/pubsub"
	"crm/internal/usecase"
	"crm/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// App holds the services a command runs against.
type App struct {
	Config      *config.Config
	Logger      *slog.Logger
	Migrator    *migration.Migrator
	DuplicateUC usecase.DuplicateUsecase
	DismissalUC usecase.DismissalUsecase
	MergeUC     usecase.MergeUsecase

	stop func(ctx context.Context) error
}

// Close stops the database connection and the event publisher.
func (a *App) Close() {
	if a.stop == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := a.stop(ctx); err != nil && a.Logger != nil {
		a.Logger.Warn("Failed to stop crmadm cleanly", slog.Any("error", err))
	}
	a.stop = nil
}

// RunFunc is the signature for command run functions.
type RunFunc func(app *App, cmd *cobra.Command, args []string) error

// bootstrapFunc builds the App for a command.
type bootstrapFunc func(cmd *cobra.Command) (*App, error)

// bootstrap is replaced in tests.
var bootstrap bootstrapFunc = bootstrapDatabase

// WithApp wraps a command's run function with the shared service graph.
func WithApp(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		return fn(app, cmd, args)
	}
}

// bootstrapDatabase wires the same providers as the API server, minus HTTP.
func bootstrapDatabase(cmd *cobra.Command) (*App, error) {
	app := &App{}
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			newStderrLogger,
			context.Background,
			postgres.New,
			migration.NewMigrator,
			postgres.NewCustomerRepository,
			postgres.NewRelatedRecordRepository,
			postgres.NewDismissalRepository,
			postgres.NewMergeRecordRepository,
			postgres.NewTransactionManager,
			impl.NewDuplicateService,
			impl.NewDismissalService,
			impl.NewMergeService,
		),
		pubsub.Module,
		fx.Populate(
			&app.Config,
			&app.Logger,
			&app.Migrator,
			&app.DuplicateUC,
			&app.DismissalUC,
			&app.MergeUC,
		),
	)
	if err := fxApp.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to build crmadm services")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := fxApp.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to connect to the database")
	}
	app.stop = fxApp.Stop

	return app, nil
}

func newStderrLogger(cfg *config.Config) (*slog.Logger, error) {
	return logs.NewWithWriter(cfg, os.Stderr)
}

// actorFromFlags resolves the tenant and, when requireOperator is set, the operator.
// The actor is also bound to the command context so service logs carry it.
func actorFromFlags(cmd *cobra.Command, requireOperator bool) (entity.Actor, error) {
	actor, err := parseActor(cmd, requireOperator)
	if err != nil {
		return entity.Actor{}, err
	}
	cmd.SetContext(deliverycontext.WithActor(cmd.Context(), actor))

	return actor, nil
}

func parseActor(cmd *cobra.Command, requireOperator bool) (entity.Actor, error) {
	tenantID, err := uuidFlag(cmd, "tenant")
	if err != nil {
		return entity.Actor{}, err
	}

	actor := entity.Actor{TenantID: tenantID}
	actor.Name, _ = cmd.Flags().GetString("operator-name")

	raw, _ := cmd.Flags().GetString("operator")
	if raw == "" {
		if requireOperator {
			return entity.Actor{}, errors.New("--operator is required for commands that change data")
		}

		return actor, nil
	}
	actor.ID, err = uuid.Parse(raw)
	if err != nil {
		return entity.Actor{}, errors.Wrap(err, "invalid --operator")
	}

	return actor, nil
}

func uuidFlag(cmd *cobra.Command, name string) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return uuid.Nil, errors.Errorf("--%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid --%s", name)
	}

	return id, nil
}

func parseUUIDArg(args []string, i int, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(args[i])
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s id %q", what, args[i])
	}

	return id, nil
}
