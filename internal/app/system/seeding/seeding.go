// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	categorystore "github.com/pearlpoint/clinicms/internal/app/store/category"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default data if not already present.
//
// Page documents are not seeded here; the page-content store creates
// them lazily on first read so a new page type costs nothing until
// someone asks for it.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return seedCategories(ctx, db, logger)
}

// seedCategories creates the built-in service categories if they don't exist.
func seedCategories(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := categorystore.New(db)

	created, skipped, err := store.SeedDefaults(ctx)
	if err != nil {
		logger.Error("failed to seed default categories", zap.Error(err))
		return err
	}

	for _, name := range created {
		logger.Info("seeded default category", zap.String("name", name))
	}
	if len(skipped) > 0 {
		logger.Debug("default categories already present",
			zap.Strings("names", skipped))
	}

	return nil
}
