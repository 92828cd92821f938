package shelflife

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestAdapter_GetShelfLife(t *testing.T) {
	window := &domain.ShelfLifeWindow{ID: 1, CategoryID: 7, Profile: domain.StorageProfileFrozen, MonthsMin: 3, MonthsMax: 6}
	repoErr := errors.New("connection reset")

	tests := []struct {
		name       string
		categoryID *int64
		profile    domain.StorageProfile
		setup      func(repo *domain.MockShelfLifeRepository)
		want       *domain.ShelfLifeWindow
		wantErr    error
	}{
		{
			name:       "no category returns nil without lookup",
			categoryID: nil,
			profile:    domain.StorageProfileFrozen,
			setup:      func(repo *domain.MockShelfLifeRepository) {},
		},
		{
			name:       "no profile returns nil without lookup",
			categoryID: int64Ptr(7),
			profile:    domain.StorageProfileNone,
			setup:      func(repo *domain.MockShelfLifeRepository) {},
		},
		{
			name:       "configured window is returned",
			categoryID: int64Ptr(7),
			profile:    domain.StorageProfileFrozen,
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(7), domain.StorageProfileFrozen).Return(window, nil)
			},
			want: window,
		},
		{
			name:       "unconfigured pair returns nil",
			categoryID: int64Ptr(7),
			profile:    domain.StorageProfileAmbient,
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(7), domain.StorageProfileAmbient).Return(nil, domain.ErrShelfLifeNotFound)
			},
		},
		{
			name:       "repository failure is propagated",
			categoryID: int64Ptr(7),
			profile:    domain.StorageProfileFrozen,
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(7), domain.StorageProfileFrozen).Return(nil, repoErr)
			},
			wantErr: repoErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockShelfLifeRepository(ctrl)
			tt.setup(repo)

			got, err := NewAdapter(repo).GetShelfLife(context.Background(), tt.categoryID, tt.profile)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetShelfLife() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetShelfLife() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
