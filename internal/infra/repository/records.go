package repository

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

type categoryRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	Color     string `gorm:"size:7"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (categoryRecord) TableName() string {
	return "categories"
}

type shelfLifeRecord struct {
	ID          int64  `gorm:"primaryKey"`
	CategoryID  int64  `gorm:"not null;uniqueIndex:idx_category_storage"`
	StorageType string `gorm:"size:16;not null;uniqueIndex:idx_category_storage"`
	MonthsMin   int    `gorm:"not null"`
	MonthsMax   int    `gorm:"not null"`
	SourceURL   string `gorm:"size:500"`
	UpdatedAt   time.Time
}

func (shelfLifeRecord) TableName() string {
	return "category_shelf_lives"
}

// Dates are stored as ISO-8601 text so sqlite and postgres agree on them.
type itemRecord struct {
	ID              int64   `gorm:"primaryKey"`
	ProductName     string  `gorm:"size:200;not null"`
	AcquisitionType string  `gorm:"size:32;not null"`
	CategoryID      *int64  `gorm:"index"`
	BestBeforeDate  string  `gorm:"size:10"`
	FreezeDate      *string `gorm:"size:10"`
	Quantity        float64 `gorm:"not null"`
	Unit            string  `gorm:"size:20"`
	IsConsumed      bool    `gorm:"not null;default:false;index"`
	CreatedAt       time.Time
}

func (itemRecord) TableName() string {
	return "items"
}

func categoryFromRecord(rec *categoryRecord) *domain.Category {
	return &domain.Category{
		ID:        rec.ID,
		Name:      rec.Name,
		Color:     rec.Color,
		SortOrder: rec.SortOrder,
		CreatedAt: rec.CreatedAt,
	}
}

func shelfLifeFromRecord(rec *shelfLifeRecord) *domain.ShelfLifeWindow {
	return &domain.ShelfLifeWindow{
		ID:         rec.ID,
		CategoryID: rec.CategoryID,
		Profile:    domain.StorageProfile(rec.StorageType),
		MonthsMin:  rec.MonthsMin,
		MonthsMax:  rec.MonthsMax,
		SourceURL:  rec.SourceURL,
		UpdatedAt:  rec.UpdatedAt,
	}
}

func itemToRecord(item *domain.Item) *itemRecord {
	rec := &itemRecord{
		ID:              item.ID,
		ProductName:     item.ProductName,
		AcquisitionType: item.AcquisitionType.String(),
		CategoryID:      item.CategoryID,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		IsConsumed:      item.Consumed,
		CreatedAt:       item.CreatedAt,
	}
	if item.Dates.BestBeforeDate.IsValid() {
		rec.BestBeforeDate = item.Dates.BestBeforeDate.String()
	}
	if item.Dates.FreezeDate != nil {
		s := item.Dates.FreezeDate.String()
		rec.FreezeDate = &s
	}
	return rec
}

func itemFromRecord(rec *itemRecord) (*domain.Item, error) {
	item := &domain.Item{
		ID:              rec.ID,
		ProductName:     rec.ProductName,
		AcquisitionType: domain.AcquisitionType(rec.AcquisitionType),
		CategoryID:      rec.CategoryID,
		Quantity:        rec.Quantity,
		Unit:            rec.Unit,
		Consumed:        rec.IsConsumed,
		CreatedAt:       rec.CreatedAt,
	}

	dates, err := itemDatesFromRecord(rec)
	if err != nil {
		return item, err
	}
	item.Dates = dates

	return item, nil
}

func itemDatesFromRecord(rec *itemRecord) (domain.ItemDates, error) {
	var dates domain.ItemDates

	if rec.BestBeforeDate != "" {
		d, err := civil.ParseDate(rec.BestBeforeDate)
		if err != nil {
			return domain.ItemDates{}, fmt.Errorf("%w: item %d best_before_date %q", domain.ErrInvalidItemDates, rec.ID, rec.BestBeforeDate)
		}
		dates.BestBeforeDate = d
	}
	if rec.FreezeDate != nil && *rec.FreezeDate != "" {
		d, err := civil.ParseDate(*rec.FreezeDate)
		if err != nil {
			return domain.ItemDates{}, fmt.Errorf("%w: item %d freeze_date %q", domain.ErrInvalidItemDates, rec.ID, *rec.FreezeDate)
		}
		dates.FreezeDate = &d
	}

	return dates, nil
}
