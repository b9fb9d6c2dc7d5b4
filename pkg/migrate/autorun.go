package migrate

import (
	"context"

	"github.com/TuancoderLo/perfume-api/pkg/config"
	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
)

// MaybeRun applies schema changes at boot when the auto-migrate flag is set.
// Postgres goes through the versioned goose migrations; sqlite (dev and
// tests) uses gorm's auto migration, since goose migrations are written in
// postgres dialect.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	if cfg.DB.IsSQLite() {
		logg.Info(ctx, "auto-migrating sqlite schema")
		return client.DB(ctx).AutoMigrate(
			&models.Member{},
			&models.Brand{},
			&models.Perfume{},
			&models.Comment{},
		)
	}

	logg.Info(ctx, "applying pending migrations")
	return Run(ctx, cfg.DB.DSN)
}
