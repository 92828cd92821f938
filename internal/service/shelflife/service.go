package shelflife

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

// Service manages shelf-life configuration. Writes are validated here so the
// read path can trust stored windows.
type Service struct {
	repo       domain.ShelfLifeRepository
	categories domain.CategoryRepository
}

func NewService(repo domain.ShelfLifeRepository, categories domain.CategoryRepository) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
	}
}

func (s *Service) Upsert(ctx context.Context, window *domain.ShelfLifeWindow) (*domain.ShelfLifeWindow, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.categories.GetCategory(ctx, window.CategoryID); err != nil {
		return nil, err
	}

	saved, err := s.repo.UpsertShelfLife(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("upsert shelf life: %w", err)
	}

	slog.InfoContext(ctx, "shelf life saved",
		slog.Int64("category_id", saved.CategoryID),
		slog.String("storage_profile", saved.Profile.String()),
		slog.Int("months_min", saved.MonthsMin),
		slog.Int("months_max", saved.MonthsMax),
	)

	return saved, nil
}

func (s *Service) List(ctx context.Context, categoryID int64) ([]*domain.ShelfLifeWindow, error) {
	if _, err := s.categories.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.repo.ListShelfLives(ctx, categoryID)
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	created, err := s.categories.CreateCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	slog.InfoContext(ctx, "category created",
		slog.Int64("category_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

func (s *Service) Delete(ctx context.Context, categoryID int64, profile domain.StorageProfile) error {
	if err := s.repo.DeleteShelfLife(ctx, categoryID, profile); err != nil {
		return err
	}

	slog.InfoContext(ctx, "shelf life deleted",
		slog.Int64("category_id", categoryID),
		slog.String("storage_profile", profile.String()),
	)

	return nil
}
