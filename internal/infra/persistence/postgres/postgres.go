package postgres

import (
	"context"
	"log/slog"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/lifecycle"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/metrics"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the audit store. It returns a nil *gorm.DB when the audit trail is
// disabled, and NewAuditRepository then falls back to the no-op trail.
func New(params Params) (*gorm.DB, error) {
	audit := params.Config.Audit
	if audit == nil || !audit.Enabled {
		params.Logger.Info("Audit trail disabled, skipping PostgreSQL")

		return nil, nil
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open audit store")
	}
	db = db.Session(&gorm.Session{
		// Audit rows are single inserts.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get audit store sql.DB")
	}
	params.Metrics.RegisterDBStats(sqlDB, "audit")

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to reach audit store")
			}

			if audit.AutoMigrate {
				if err := db.WithContext(ctx).AutoMigrate(&model.ModerationRecordModel{}); err != nil {
					return errors.Wrap(err, "failed to migrate moderation_records")
				}
			}

			stats := sqlDB.Stats()
			params.Logger.Info("Audit store ready",
				slog.Bool("auto_migrate", audit.AutoMigrate),
				slog.Int("max_open_conns", stats.MaxOpenConnections),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing audit store")

			return sqlDB.Close()
		},
	})

	return db, nil
}
