package shelflife

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

func TestService_Upsert(t *testing.T) {
	tests := []struct {
		name    string
		window  *domain.ShelfLifeWindow
		setup   func(repo *domain.MockShelfLifeRepository, categories *domain.MockCategoryRepository)
		wantErr error
	}{
		{
			name:   "valid window is saved",
			window: &domain.ShelfLifeWindow{CategoryID: 3, Profile: domain.StorageProfileAmbient, MonthsMin: 12, MonthsMax: 24},
			setup: func(repo *domain.MockShelfLifeRepository, categories *domain.MockCategoryRepository) {
				categories.EXPECT().GetCategory(gomock.Any(), int64(3)).Return(&domain.Category{ID: 3, Name: "Marmelade"}, nil)
				repo.EXPECT().UpsertShelfLife(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w *domain.ShelfLifeWindow) (*domain.ShelfLifeWindow, error) {
						saved := *w
						saved.ID = 11
						return &saved, nil
					})
			},
		},
		{
			name:   "min greater than max is rejected before any lookup",
			window: &domain.ShelfLifeWindow{CategoryID: 3, Profile: domain.StorageProfileFrozen, MonthsMin: 9, MonthsMax: 3},
			setup: func(repo *domain.MockShelfLifeRepository, categories *domain.MockCategoryRepository) {
			},
			wantErr: domain.ErrInvalidShelfLifeWindow,
		},
		{
			name:   "unknown category",
			window: &domain.ShelfLifeWindow{CategoryID: 99, Profile: domain.StorageProfileFrozen, MonthsMin: 1, MonthsMax: 3},
			setup: func(repo *domain.MockShelfLifeRepository, categories *domain.MockCategoryRepository) {
				categories.EXPECT().GetCategory(gomock.Any(), int64(99)).Return(nil, domain.ErrCategoryNotFound)
			},
			wantErr: domain.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockShelfLifeRepository(ctrl)
			categories := domain.NewMockCategoryRepository(ctrl)
			tt.setup(repo, categories)

			saved, err := NewService(repo, categories).Upsert(context.Background(), tt.window)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Upsert() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if saved.ID != 11 {
				t.Errorf("expected saved ID 11, got %d", saved.ID)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockShelfLifeRepository(ctrl)
	categories := domain.NewMockCategoryRepository(ctrl)

	windows := []*domain.ShelfLifeWindow{
		{ID: 1, CategoryID: 5, Profile: domain.StorageProfileFrozen, MonthsMin: 2, MonthsMax: 4},
		{ID: 2, CategoryID: 5, Profile: domain.StorageProfileAmbient, MonthsMin: 6, MonthsMax: 12},
	}

	categories.EXPECT().GetCategory(gomock.Any(), int64(5)).Return(&domain.Category{ID: 5}, nil)
	repo.EXPECT().ListShelfLives(gomock.Any(), int64(5)).Return(windows, nil)

	got, err := NewService(repo, categories).List(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 windows, got %d", len(got))
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockShelfLifeRepository(ctrl)
	categories := domain.NewMockCategoryRepository(ctrl)

	repo.EXPECT().DeleteShelfLife(gomock.Any(), int64(5), domain.StorageProfileFrozen).Return(domain.ErrShelfLifeNotFound)

	err := NewService(repo, categories).Delete(context.Background(), 5, domain.StorageProfileFrozen)
	if !errors.Is(err, domain.ErrShelfLifeNotFound) {
		t.Errorf("Delete() error = %v, want ErrShelfLifeNotFound", err)
	}
}

func TestService_CreateCategory(t *testing.T) {
	tests := []struct {
		name     string
		category *domain.Category
		setup    func(categories *domain.MockCategoryRepository)
		wantErr  error
	}{
		{
			name:     "valid category is created",
			category: &domain.Category{Name: "Brot", Color: "#795548", SortOrder: 4},
			setup: func(categories *domain.MockCategoryRepository) {
				categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Category) (*domain.Category, error) {
						created := *c
						created.ID = 21
						return &created, nil
					})
			},
		},
		{
			name:     "blank name is rejected before the store",
			category: &domain.Category{Name: "   "},
			setup:    func(categories *domain.MockCategoryRepository) {},
			wantErr:  domain.ErrInvalidCategory,
		},
		{
			name:     "negative sort order is rejected",
			category: &domain.Category{Name: "Brot", SortOrder: -1},
			setup:    func(categories *domain.MockCategoryRepository) {},
			wantErr:  domain.ErrInvalidCategory,
		},
		{
			name:     "duplicate name",
			category: &domain.Category{Name: "Brot"},
			setup: func(categories *domain.MockCategoryRepository) {
				categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCategoryExists)
			},
			wantErr: domain.ErrCategoryExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			categories := domain.NewMockCategoryRepository(ctrl)
			tt.setup(categories)

			created, err := NewService(domain.NewMockShelfLifeRepository(ctrl), categories).CreateCategory(context.Background(), tt.category)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateCategory() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateCategory() unexpected error: %v", err)
			}
			if created.ID != 21 {
				t.Errorf("CreateCategory() ID = %d, want 21", created.ID)
			}
		})
	}
}
