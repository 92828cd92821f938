package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var rec categoryRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	return categoryFromRecord(&rec), nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var recs []categoryRecord
	if err := r.db.WithContext(ctx).Order("sort_order, name").Find(&recs).Error; err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(recs))
	for i := range recs {
		categories = append(categories, categoryFromRecord(&recs[i]))
	}
	return categories, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	rec := categoryRecord{
		Name:      strings.TrimSpace(category.Name),
		Color:     category.Color,
		SortOrder: category.SortOrder,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q", domain.ErrCategoryExists, rec.Name)
		}
		return nil, err
	}

	return categoryFromRecord(&rec), nil
}
