// Package migration applies the embedded PostgreSQL schema with golang-migrate.
package migration

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"crm/config"
	"crm/internal/domain/lifecycle"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var migrationFS embed.FS

const migrationsTable = "schema_migrations"

// slogMigrateLogger adapts slog to migrate.Logger.
type slogMigrateLogger struct {
	logger *slog.Logger
}

func (l slogMigrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l slogMigrateLogger) Verbose() bool {
	return false
}

// Migrator runs schema migrations against the application database.
type Migrator struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewMigrator creates a Migrator sharing the application's connection pool.
func NewMigrator(db *gorm.DB, logger *slog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, func(mg *migrate.Migrate) error {
		return mg.Up()
	})
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(ctx context.Context, steps int) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}

	return m.run(ctx, func(mg *migrate.Migrate) error {
		return mg.Steps(-steps)
	})
}

// Version reports the applied schema version and whether the last migration failed halfway.
func (m *Migrator) Version(ctx context.Context) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := m.run(ctx, func(mg *migrate.Migrate) error {
		var err error
		version, dirty, err = mg.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}

		return err
	})

	return version, dirty, err
}

func (m *Migrator) run(ctx context.Context, fn func(*migrate.Migrate) error) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	// A dedicated connection keeps Close from shutting down the shared pool.
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}

	driver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	source, err := iofs.New(migrationFS, "sql")
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to open embedded migrations")
	}

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = source.Close()
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrate instance")
	}
	mg.Log = slogMigrateLogger{logger: m.logger}
	defer func() {
		if srcErr, dbErr := mg.Close(); srcErr != nil || dbErr != nil {
			m.logger.Warn("Failed to close migrate instance",
				slog.Any("source_error", srcErr),
				slog.Any("database_error", dbErr),
			)
		}
	}()

	if err := fn(mg); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration failed")
	}

	return nil
}

// AutoMigrateParams defines the dependencies of RegisterAutoMigrate.
type AutoMigrateParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Migrator *Migrator
	Logger   *slog.Logger
}

// RegisterAutoMigrate applies pending migrations on startup when enabled in config.
func RegisterAutoMigrate(params AutoMigrateParams) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := params.Migrator.Up(ctx); err != nil {
				return err
			}

			version, _, err := params.Migrator.Version(ctx)
			if err != nil {
				return err
			}
			params.Logger.Info("Database schema is up to date", slog.Uint64("version", uint64(version)))

			return nil
		},
	})
}
