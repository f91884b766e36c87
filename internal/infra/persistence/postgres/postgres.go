package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"crm/config"
	"crm/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary PostgreSQL connection. Statements run without gorm's
// implicit transaction; merges and undos open their own through TransactionManager.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			go monitor.run(monitorCtx, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

// poolMonitor reports connection pool waits. Merges hold a connection for the
// whole transaction, so waits are the first sign the pool is undersized.
type poolMonitor struct {
	logger    *slog.Logger
	interval  time.Duration
	warnAfter time.Duration
}

func newPoolMonitor(logger *slog.Logger) *poolMonitor {
	return &poolMonitor{
		logger:    logger,
		interval:  5 * time.Second,
		warnAfter: 50 * time.Millisecond,
	}
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB) {
	if m.logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, ok := m.compare(prev, cur); ok {
				m.logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// compare reports the waits that happened between two pool snapshots.
func (m *poolMonitor) compare(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}
	waited := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	}

	if waited >= m.warnAfter {
		return slog.LevelWarn, attrs, true
	}

	return slog.LevelDebug, attrs, true
}
