package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"kioskdash/config"
	"kioskdash/internal/domain/constants"
	"kioskdash/internal/domain/lifecycle"
	"kioskdash/internal/errors"
	"kioskdash/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Models lists every table the dashboard owns, in migration order.
func Models() []any {
	return []any{
		&model.OrganizationModel{},
		&model.ConnectionModel{},
		&model.DonationModel{},
		&model.ReceiptDeliveryModel{},
		&model.DonorChangeModel{},
	}
}

// New creates the PostgreSQL client. Replicas configured on the connection are
// used for reads pinned with dbresolver.Read.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			// Production schemas are managed by migrations; develop boots from the models.
			if params.Config.Env.Env == constants.EnvDevelop {
				if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
					return errors.Wrap(err, "failed to auto-migrate schema")
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWait is the connection wait accumulated between two pool samples.
type poolWait struct {
	count    int64
	duration time.Duration
}

func (w poolWait) average() time.Duration {
	if w.count <= 0 {
		return 0
	}

	return w.duration / time.Duration(w.count)
}

// level escalates to warn once callers waited long enough to be felt on a dashboard request.
func (w poolWait) level() slog.Level {
	if w.duration >= dbPoolWarnDurationThreshold {
		return slog.LevelWarn
	}

	return slog.LevelDebug
}

func waitSince(prev, cur sql.DBStats) (poolWait, bool) {
	w := poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
	}

	return w, w.count > 0
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if wait, ok := waitSince(prev, cur); ok {
				logger.LogAttrs(ctx, wait.level(), "Postgres pool wait",
					slog.Int64("wait_count", wait.count),
					slog.Duration("wait_duration", wait.duration),
					slog.Duration("avg_wait", wait.average()),
					slog.Int("max_open_conns", cur.MaxOpenConnections),
					slog.Int("in_use_conns", cur.InUse),
					slog.Int("idle_conns", cur.Idle),
				)
			}
			prev = cur
		}
	}
}
