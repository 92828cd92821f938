package repository

import (
	"context"

	"gorm.io/gorm"
)

func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&categoryRecord{},
		&shelfLifeRecord{},
		&itemRecord{},
	)
}
