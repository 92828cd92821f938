package evaluation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/shelflife"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/threshold"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func datePtr(y int, m time.Month, d int) *civil.Date {
	v := date(y, m, d)
	return &v
}

func clock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
	}
}

func categoryID(v int64) *int64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func newTestService(t *testing.T, shelfRepo domain.ShelfLifeRepository, items domain.ItemRepository, opts ...Option) *Service {
	t.Helper()
	return NewService(items, shelflife.NewAdapter(shelfRepo), threshold.NewResolver(nil, nil), opts...)
}

func TestService_Evaluate(t *testing.T) {
	frozenWindow := &domain.ShelfLifeWindow{
		ID:         1,
		CategoryID: 9,
		Profile:    domain.StorageProfileFrozen,
		MonthsMin:  1,
		MonthsMax:  3,
	}

	tests := []struct {
		name       string
		now        func() time.Time
		input      Input
		setup      func(repo *domain.MockShelfLifeRepository)
		wantResult domain.ExpiryResult
		wantStatus domain.Status
		wantDays   *int
		wantErr    error
	}{
		{
			name: "homemade frozen before optimal is ok",
			now:  clock(2024, time.February, 20),
			input: Input{
				AcquisitionType: domain.AcquisitionHomemadeFrozen,
				CategoryID:      categoryID(9),
				Dates:           domain.ItemDates{FreezeDate: datePtr(2024, time.January, 31)},
			},
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(9), domain.StorageProfileFrozen).Return(frozenWindow, nil)
			},
			wantResult: domain.ExpiryResult{
				OptimalDate: datePtr(2024, time.February, 29),
				MaxDate:     datePtr(2024, time.April, 30),
			},
			wantStatus: domain.StatusOK,
			wantDays:   intPtr(70),
		},
		{
			name: "homemade frozen past optimal is warning",
			now:  clock(2024, time.March, 1),
			input: Input{
				AcquisitionType: domain.AcquisitionHomemadeFrozen,
				CategoryID:      categoryID(9),
				Dates:           domain.ItemDates{FreezeDate: datePtr(2024, time.January, 31)},
			},
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(9), domain.StorageProfileFrozen).Return(frozenWindow, nil)
			},
			wantResult: domain.ExpiryResult{
				OptimalDate: datePtr(2024, time.February, 29),
				MaxDate:     datePtr(2024, time.April, 30),
			},
			wantStatus: domain.StatusWarning,
			wantDays:   intPtr(60),
		},
		{
			name: "purchased then frozen near max is critical",
			now:  clock(2024, time.April, 28),
			input: Input{
				AcquisitionType: domain.AcquisitionPurchasedThenFrozen,
				CategoryID:      categoryID(9),
				Dates: domain.ItemDates{
					BestBeforeDate: date(2024, time.January, 10),
					FreezeDate:     datePtr(2024, time.January, 31),
				},
			},
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(9), domain.StorageProfileFrozen).Return(frozenWindow, nil)
			},
			wantResult: domain.ExpiryResult{
				OptimalDate: datePtr(2024, time.February, 29),
				MaxDate:     datePtr(2024, time.April, 30),
			},
			wantStatus: domain.StatusCritical,
			wantDays:   intPtr(2),
		},
		{
			name: "homemade preserved counts from production date",
			now:  clock(2025, time.June, 15),
			input: Input{
				AcquisitionType: domain.AcquisitionHomemadePreserved,
				CategoryID:      categoryID(4),
				Dates:           domain.ItemDates{BestBeforeDate: date(2024, time.August, 31)},
			},
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(4), domain.StorageProfileAmbient).Return(&domain.ShelfLifeWindow{
					CategoryID: 4,
					Profile:    domain.StorageProfileAmbient,
					MonthsMin:  6,
					MonthsMax:  12,
				}, nil)
			},
			wantResult: domain.ExpiryResult{
				OptimalDate: datePtr(2025, time.February, 28),
				MaxDate:     datePtr(2025, time.August, 31),
			},
			wantStatus: domain.StatusWarning,
			wantDays:   intPtr(77),
		},
		{
			name: "purchased fresh uses best before date",
			now:  clock(2025, time.June, 15),
			input: Input{
				AcquisitionType: domain.AcquisitionPurchasedFresh,
				CategoryID:      categoryID(9),
				Dates:           domain.ItemDates{BestBeforeDate: date(2025, time.June, 20)},
			},
			wantResult: domain.ExpiryResult{BestBeforeDate: datePtr(2025, time.June, 20)},
			wantStatus: domain.StatusWarning,
			wantDays:   intPtr(5),
		},
		{
			name: "purchased frozen ignores freeze date",
			now:  clock(2025, time.June, 15),
			input: Input{
				AcquisitionType: domain.AcquisitionPurchasedFrozen,
				Dates: domain.ItemDates{
					BestBeforeDate: date(2025, time.June, 14),
					FreezeDate:     datePtr(2025, time.January, 1),
				},
			},
			wantResult: domain.ExpiryResult{BestBeforeDate: datePtr(2025, time.June, 14)},
			wantStatus: domain.StatusCritical,
			wantDays:   intPtr(-1),
		},
		{
			name: "purchased fresh without best before date is unknown",
			now:  clock(2025, time.June, 15),
			input: Input{
				AcquisitionType: domain.AcquisitionPurchasedFresh,
			},
			wantResult: domain.ExpiryResult{},
			wantStatus: domain.StatusUnknown,
		},
		{
			name: "no category is unknown",
			now:  clock(2025, time.June, 15),
			input: Input{
				AcquisitionType: domain.AcquisitionHomemadeFrozen,
				Dates:           domain.ItemDates{FreezeDate: datePtr(2025, time.May, 1)},
			},
			wantResult: domain.ExpiryResult{},
			wantStatus: domain.StatusUnknown,
		},
		{
			name: "unconfigured window is unknown",
			now:  clock(2025, time.June, 15),
			input: Input{
				AcquisitionType: domain.AcquisitionHomemadeFrozen,
				CategoryID:      categoryID(9),
				Dates:           domain.ItemDates{FreezeDate: datePtr(2025, time.May, 1)},
			},
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(9), domain.StorageProfileFrozen).Return(nil, domain.ErrShelfLifeNotFound)
			},
			wantResult: domain.ExpiryResult{},
			wantStatus: domain.StatusUnknown,
		},
		{
			name: "missing freeze date fails",
			now:  clock(2025, time.June, 15),
			input: Input{
				AcquisitionType: domain.AcquisitionPurchasedThenFrozen,
				CategoryID:      categoryID(9),
				Dates:           domain.ItemDates{BestBeforeDate: date(2025, time.June, 20)},
			},
			wantErr: domain.ErrMissingBaseDate,
		},
		{
			name: "missing production date fails",
			now:  clock(2025, time.June, 15),
			input: Input{
				AcquisitionType: domain.AcquisitionHomemadePreserved,
				CategoryID:      categoryID(4),
			},
			wantErr: domain.ErrMissingBaseDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockShelfLifeRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			svc := newTestService(t, repo, nil, WithClock(tt.now))

			got, err := svc.Evaluate(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Evaluate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate() unexpected error: %v", err)
			}

			if diff := cmp.Diff(tt.wantResult, got.Result); diff != "" {
				t.Errorf("Evaluate() result mismatch (-want +got):\n%s", diff)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Evaluate() status = %v, want %v", got.Status, tt.wantStatus)
			}
			if diff := cmp.Diff(tt.wantDays, got.DaysRemaining); diff != "" {
				t.Errorf("Evaluate() days remaining mismatch (-want +got):\n%s", diff)
			}
			if got.Thresholds != domain.DefaultThresholds() {
				t.Errorf("Evaluate() thresholds = %+v, want defaults", got.Thresholds)
			}
		})
	}
}

func TestService_Evaluate_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockShelfLifeRepository(ctrl)
	boom := errors.New("database is locked")
	repo.EXPECT().GetShelfLife(gomock.Any(), int64(9), domain.StorageProfileFrozen).Return(nil, boom)

	svc := newTestService(t, repo, nil, WithClock(clock(2025, time.June, 15)))

	_, err := svc.Evaluate(context.Background(), Input{
		AcquisitionType: domain.AcquisitionHomemadeFrozen,
		CategoryID:      categoryID(9),
		Dates:           domain.ItemDates{FreezeDate: datePtr(2025, time.May, 1)},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Evaluate() error = %v, want %v", err, boom)
	}
}

func TestService_Evaluate_UserThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := domain.NewMockSettingsRepository(ctrl)
	prefs := domain.NewMockPreferenceRepository(ctrl)

	prefs.EXPECT().GetUserPreference(gomock.Any(), int64(5), domain.CriticalDaysKey).Return(10, true, nil)
	prefs.EXPECT().GetUserPreference(gomock.Any(), int64(5), domain.WarningDaysKey).Return(0, false, nil)
	settings.EXPECT().GetSystemSetting(gomock.Any(), domain.WarningDaysKey).Return("14", true, nil)

	svc := NewService(nil, shelflife.NewAdapter(nil), threshold.NewResolver(settings, prefs),
		WithClock(clock(2025, time.June, 15)),
	)

	userID := int64(5)
	got, err := svc.Evaluate(context.Background(), Input{
		AcquisitionType: domain.AcquisitionPurchasedFresh,
		Dates:           domain.ItemDates{BestBeforeDate: date(2025, time.June, 24)},
		UserID:          &userID,
	})
	if err != nil {
		t.Fatalf("Evaluate() unexpected error: %v", err)
	}

	if want := (domain.Thresholds{CriticalDays: 10, WarningDays: 14}); got.Thresholds != want {
		t.Errorf("Evaluate() thresholds = %+v, want %+v", got.Thresholds, want)
	}
	if got.Status != domain.StatusCritical {
		t.Errorf("Evaluate() status = %v, want %v", got.Status, domain.StatusCritical)
	}
}

func TestService_Evaluate_RecordsStoredItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := domain.NewMockStatusRecorder(ctrl)

	recorder.EXPECT().RecordEvaluations(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.StatusRecord) error {
			if len(records) != 1 {
				t.Fatalf("RecordEvaluations() got %d records, want 1", len(records))
			}
			if records[0].ItemID != 42 || records[0].Status != domain.StatusOK {
				t.Errorf("RecordEvaluations() record = %+v", records[0])
			}
			return errors.New("influx unavailable")
		},
	)

	svc := newTestService(t, nil, nil,
		WithClock(clock(2025, time.June, 15)),
		WithRecorder(recorder),
	)

	got, err := svc.Evaluate(context.Background(), Input{
		ItemID:          42,
		AcquisitionType: domain.AcquisitionPurchasedFresh,
		Dates:           domain.ItemDates{BestBeforeDate: date(2025, time.July, 15)},
	})
	if err != nil {
		t.Fatalf("Evaluate() recorder failure must not fail evaluation: %v", err)
	}
	if got.Status != domain.StatusOK {
		t.Errorf("Evaluate() status = %v, want %v", got.Status, domain.StatusOK)
	}
}

func TestService_ExpiryInfo(t *testing.T) {
	tests := []struct {
		name    string
		item    *domain.Item
		itemErr error
		setup   func(repo *domain.MockShelfLifeRepository)
		want    domain.ExpiryResult
		wantErr error
	}{
		{
			name: "printed date item",
			item: &domain.Item{
				ID:              1,
				AcquisitionType: domain.AcquisitionPurchasedFresh,
				Dates:           domain.ItemDates{BestBeforeDate: date(2025, time.March, 3)},
			},
			want: domain.ExpiryResult{BestBeforeDate: datePtr(2025, time.March, 3)},
		},
		{
			name: "shelf-life item",
			item: &domain.Item{
				ID:              2,
				AcquisitionType: domain.AcquisitionHomemadeFrozen,
				CategoryID:      categoryID(9),
				Dates:           domain.ItemDates{FreezeDate: datePtr(2024, time.January, 31)},
			},
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(9), domain.StorageProfileFrozen).Return(&domain.ShelfLifeWindow{
					CategoryID: 9,
					Profile:    domain.StorageProfileFrozen,
					MonthsMin:  1,
					MonthsMax:  3,
				}, nil)
			},
			want: domain.ExpiryResult{
				OptimalDate: datePtr(2024, time.February, 29),
				MaxDate:     datePtr(2024, time.April, 30),
			},
		},
		{
			name: "missing configuration",
			item: &domain.Item{
				ID:              3,
				AcquisitionType: domain.AcquisitionHomemadePreserved,
				CategoryID:      categoryID(2),
				Dates:           domain.ItemDates{BestBeforeDate: date(2025, time.March, 3)},
			},
			setup: func(repo *domain.MockShelfLifeRepository) {
				repo.EXPECT().GetShelfLife(gomock.Any(), int64(2), domain.StorageProfileAmbient).Return(nil, domain.ErrShelfLifeNotFound)
			},
			want: domain.ExpiryResult{},
		},
		{
			name:    "unknown item",
			itemErr: domain.ErrItemNotFound,
			wantErr: domain.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockShelfLifeRepository(ctrl)
			items := domain.NewMockItemRepository(ctrl)
			items.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(tt.item, tt.itemErr)
			if tt.setup != nil {
				tt.setup(repo)
			}

			svc := newTestService(t, repo, items)

			got, err := svc.ExpiryInfo(context.Background(), 7)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExpiryInfo() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExpiryInfo() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExpiryInfo() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_EvaluateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := domain.NewMockItemRepository(ctrl)
	items.EXPECT().GetItem(gomock.Any(), int64(12)).Return(&domain.Item{
		ID:              12,
		AcquisitionType: domain.AcquisitionPurchasedFresh,
		Dates:           domain.ItemDates{BestBeforeDate: date(2025, time.June, 17)},
	}, nil)

	svc := newTestService(t, nil, items, WithClock(clock(2025, time.June, 15)))

	got, err := svc.EvaluateItem(context.Background(), 12, nil)
	if err != nil {
		t.Fatalf("EvaluateItem() unexpected error: %v", err)
	}
	if got.ItemID != 12 {
		t.Errorf("EvaluateItem() item id = %d, want 12", got.ItemID)
	}
	if got.Status != domain.StatusCritical {
		t.Errorf("EvaluateItem() status = %v, want %v", got.Status, domain.StatusCritical)
	}
}

func TestService_EvaluateActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockShelfLifeRepository(ctrl)
	items := domain.NewMockItemRepository(ctrl)
	recorder := domain.NewMockStatusRecorder(ctrl)

	fresh := func(id int64, bbd civil.Date) *domain.Item {
		return &domain.Item{
			ID:              id,
			AcquisitionType: domain.AcquisitionPurchasedFresh,
			Dates:           domain.ItemDates{BestBeforeDate: bbd},
		}
	}

	items.EXPECT().ListActiveItems(gomock.Any()).Return([]*domain.Item{
		fresh(1, date(2025, time.July, 5)),
		fresh(2, date(2025, time.June, 16)),
		{
			ID:              3,
			AcquisitionType: domain.AcquisitionPurchasedThenFrozen,
			CategoryID:      categoryID(9),
		},
		fresh(4, date(2025, time.June, 20)),
		{
			ID:              5,
			AcquisitionType: domain.AcquisitionHomemadeFrozen,
			CategoryID:      categoryID(9),
			Dates:           domain.ItemDates{FreezeDate: datePtr(2025, time.June, 1)},
		},
		fresh(6, date(2025, time.July, 5)),
	}, nil)
	repo.EXPECT().GetShelfLife(gomock.Any(), int64(9), domain.StorageProfileFrozen).Return(&domain.ShelfLifeWindow{
		CategoryID: 9,
		Profile:    domain.StorageProfileFrozen,
		MonthsMin:  1,
		MonthsMax:  3,
	}, nil)
	recorder.EXPECT().RecordEvaluations(gomock.Any(), gomock.Len(6)).Return(nil)

	svc := newTestService(t, repo, items,
		WithClock(clock(2025, time.June, 15)),
		WithConcurrency(2),
		WithRecorder(recorder),
	)

	got, err := svc.EvaluateActive(context.Background(), nil)
	if err != nil {
		t.Fatalf("EvaluateActive() unexpected error: %v", err)
	}

	type row struct {
		ItemID int64
		Status domain.Status
		Days   *int
	}
	rows := make([]row, 0, len(got))
	for _, ev := range got {
		rows = append(rows, row{ItemID: ev.ItemID, Status: ev.Status, Days: ev.DaysRemaining})
	}

	want := []row{
		{ItemID: 2, Status: domain.StatusCritical, Days: intPtr(1)},
		{ItemID: 4, Status: domain.StatusWarning, Days: intPtr(5)},
		{ItemID: 1, Status: domain.StatusOK, Days: intPtr(20)},
		{ItemID: 6, Status: domain.StatusOK, Days: intPtr(20)},
		{ItemID: 5, Status: domain.StatusOK, Days: intPtr(78)},
		{ItemID: 3, Status: domain.StatusUnknown},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("EvaluateActive() order mismatch (-want +got):\n%s", diff)
	}

	if last := got[len(got)-1]; last.Error == "" {
		t.Errorf("EvaluateActive() item %d missing base date should carry an error", last.ItemID)
	}
}

func TestService_EvaluateActive_Failures(t *testing.T) {
	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := domain.NewMockItemRepository(ctrl)
		boom := errors.New("connection refused")
		items.EXPECT().ListActiveItems(gomock.Any()).Return(nil, boom)

		svc := newTestService(t, nil, items)

		if _, err := svc.EvaluateActive(context.Background(), nil); !errors.Is(err, boom) {
			t.Errorf("EvaluateActive() error = %v, want %v", err, boom)
		}
	})

	t.Run("shelf-life failure fails the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := domain.NewMockShelfLifeRepository(ctrl)
		items := domain.NewMockItemRepository(ctrl)
		boom := errors.New("database is locked")

		items.EXPECT().ListActiveItems(gomock.Any()).Return([]*domain.Item{
			{
				ID:              1,
				AcquisitionType: domain.AcquisitionHomemadeFrozen,
				CategoryID:      categoryID(9),
				Dates:           domain.ItemDates{FreezeDate: datePtr(2025, time.June, 1)},
			},
		}, nil)
		repo.EXPECT().GetShelfLife(gomock.Any(), int64(9), domain.StorageProfileFrozen).Return(nil, boom)

		svc := newTestService(t, repo, items)

		if _, err := svc.EvaluateActive(context.Background(), nil); !errors.Is(err, boom) {
			t.Errorf("EvaluateActive() error = %v, want %v", err, boom)
		}
	})

	t.Run("unreadable stored dates do not fail the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := domain.NewMockItemRepository(ctrl)
		corrupt := fmt.Errorf("%w: item 7 best_before_date %q", domain.ErrInvalidItemDates, "31.01.2024")

		items.EXPECT().ListActiveItems(gomock.Any()).Return([]*domain.Item{
			{
				ID:              7,
				AcquisitionType: domain.AcquisitionPurchasedFresh,
				DatesErr:        corrupt,
			},
			{
				ID:              8,
				AcquisitionType: domain.AcquisitionPurchasedFresh,
				Dates:           domain.ItemDates{BestBeforeDate: date(2025, time.June, 16)},
			},
		}, nil)

		svc := newTestService(t, nil, items, WithClock(clock(2025, time.June, 15)))

		got, err := svc.EvaluateActive(context.Background(), nil)
		if err != nil {
			t.Fatalf("EvaluateActive() unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("EvaluateActive() = %d evaluations, want 2", len(got))
		}
		if got[0].ItemID != 8 || got[0].Status != domain.StatusCritical {
			t.Errorf("EvaluateActive()[0] = %d/%s, want 8/critical", got[0].ItemID, got[0].Status)
		}
		if got[1].ItemID != 7 || got[1].Status != domain.StatusUnknown {
			t.Errorf("EvaluateActive()[1] = %d/%s, want 7/unknown", got[1].ItemID, got[1].Status)
		}
		if got[1].Error != corrupt.Error() {
			t.Errorf("EvaluateActive()[1].Error = %q, want %q", got[1].Error, corrupt.Error())
		}
	})

	t.Run("empty pantry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := domain.NewMockItemRepository(ctrl)
		items.EXPECT().ListActiveItems(gomock.Any()).Return(nil, nil)

		svc := newTestService(t, nil, items)

		got, err := svc.EvaluateActive(context.Background(), nil)
		if err != nil {
			t.Fatalf("EvaluateActive() unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("EvaluateActive() = %d evaluations, want 0", len(got))
		}
	})
}
