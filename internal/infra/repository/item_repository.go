package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) domain.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

func (r *itemRepository) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	var rec itemRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	item, err := itemFromRecord(&rec)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) ListActiveItems(ctx context.Context) ([]*domain.Item, error) {
	var recs []itemRecord
	err := r.db.WithContext(ctx).
		Where("is_consumed = ?", false).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	// A row with unreadable dates is still listed so one bad row cannot hide
	// the rest of the pantry.
	items := make([]*domain.Item, 0, len(recs))
	for i := range recs {
		item, err := itemFromRecord(&recs[i])
		if err != nil {
			slog.WarnContext(ctx, "item has invalid stored dates",
				slog.Int64("item_id", recs[i].ID),
				slog.String("error", err.Error()),
			)
			item.DatesErr = err
		}
		items = append(items, item)
	}
	return items, nil
}
