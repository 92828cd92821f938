package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

type shelfLifeRepository struct {
	db *gorm.DB
}

func NewShelfLifeRepository(db *gorm.DB) domain.ShelfLifeRepository {
	return &shelfLifeRepository{
		db: db,
	}
}

func (r *shelfLifeRepository) GetShelfLife(ctx context.Context, categoryID int64, profile domain.StorageProfile) (*domain.ShelfLifeWindow, error) {
	var rec shelfLifeRecord
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND storage_type = ?", categoryID, string(profile)).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShelfLifeNotFound
		}
		return nil, err
	}

	return shelfLifeFromRecord(&rec), nil
}

func (r *shelfLifeRepository) ListShelfLives(ctx context.Context, categoryID int64) ([]*domain.ShelfLifeWindow, error) {
	var recs []shelfLifeRecord
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("storage_type").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	windows := make([]*domain.ShelfLifeWindow, 0, len(recs))
	for i := range recs {
		windows = append(windows, shelfLifeFromRecord(&recs[i]))
	}
	return windows, nil
}

// UpsertShelfLife inserts the window or replaces the one configured for the
// same category and profile.
func (r *shelfLifeRepository) UpsertShelfLife(ctx context.Context, window *domain.ShelfLifeWindow) (*domain.ShelfLifeWindow, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	rec := shelfLifeRecord{
		CategoryID:  window.CategoryID,
		StorageType: string(window.Profile),
		MonthsMin:   window.MonthsMin,
		MonthsMax:   window.MonthsMax,
		SourceURL:   window.SourceURL,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "storage_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"months_min", "months_max", "source_url", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return nil, err
	}

	// The returned id is unreliable on the conflict path, so read it back.
	return r.GetShelfLife(ctx, window.CategoryID, window.Profile)
}

func (r *shelfLifeRepository) DeleteShelfLife(ctx context.Context, categoryID int64, profile domain.StorageProfile) error {
	res := r.db.WithContext(ctx).
		Where("category_id = ? AND storage_type = ?", categoryID, string(profile)).
		Delete(&shelfLifeRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrShelfLifeNotFound
	}
	return nil
}
