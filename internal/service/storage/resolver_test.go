package storage

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		acquisitionType domain.AcquisitionType
		want            domain.StorageProfile
	}{
		{domain.AcquisitionPurchasedFresh, domain.StorageProfileNone},
		{domain.AcquisitionPurchasedFrozen, domain.StorageProfileNone},
		{domain.AcquisitionPurchasedThenFrozen, domain.StorageProfileFrozen},
		{domain.AcquisitionHomemadeFrozen, domain.StorageProfileFrozen},
		{domain.AcquisitionHomemadePreserved, domain.StorageProfileAmbient},
	}

	for _, tt := range tests {
		t.Run(tt.acquisitionType.String(), func(t *testing.T) {
			if got := ResolveProfile(tt.acquisitionType); got != tt.want {
				t.Errorf("ResolveProfile(%s) = %v, want %v", tt.acquisitionType, got, tt.want)
			}
		})
	}
}

func TestResolveProfile_TotalAndDeterministic(t *testing.T) {
	for _, at := range domain.AcquisitionTypes() {
		if _, ok := profiles[at]; !ok {
			t.Errorf("acquisition type %s has no mapping", at)
		}
		first := ResolveProfile(at)
		for i := 0; i < 3; i++ {
			if got := ResolveProfile(at); got != first {
				t.Errorf("ResolveProfile(%s) changed between calls: %v then %v", at, first, got)
			}
		}
	}
}

func TestRequiresFreezeDate(t *testing.T) {
	want := map[domain.AcquisitionType]bool{
		domain.AcquisitionPurchasedFresh:      false,
		domain.AcquisitionPurchasedFrozen:     false,
		domain.AcquisitionPurchasedThenFrozen: true,
		domain.AcquisitionHomemadeFrozen:      true,
		domain.AcquisitionHomemadePreserved:   false,
	}

	for at, w := range want {
		if got := RequiresFreezeDate(at); got != w {
			t.Errorf("RequiresFreezeDate(%s) = %v, want %v", at, got, w)
		}
	}
}

func TestBaseDate(t *testing.T) {
	bestBefore := civil.Date{Year: 2025, Month: 3, Day: 1}
	freeze := civil.Date{Year: 2025, Month: 1, Day: 15}

	tests := []struct {
		name            string
		acquisitionType domain.AcquisitionType
		dates           domain.ItemDates
		want            civil.Date
		wantErr         error
	}{
		{
			name:            "purchased then frozen uses freeze date",
			acquisitionType: domain.AcquisitionPurchasedThenFrozen,
			dates:           domain.ItemDates{BestBeforeDate: bestBefore, FreezeDate: &freeze},
			want:            freeze,
		},
		{
			name:            "homemade frozen uses freeze date",
			acquisitionType: domain.AcquisitionHomemadeFrozen,
			dates:           domain.ItemDates{BestBeforeDate: bestBefore, FreezeDate: &freeze},
			want:            freeze,
		},
		{
			name:            "homemade preserved uses production date",
			acquisitionType: domain.AcquisitionHomemadePreserved,
			dates:           domain.ItemDates{BestBeforeDate: bestBefore, FreezeDate: &freeze},
			want:            bestBefore,
		},
		{
			name:            "frozen without freeze date fails",
			acquisitionType: domain.AcquisitionHomemadeFrozen,
			dates:           domain.ItemDates{BestBeforeDate: bestBefore},
			wantErr:         domain.ErrMissingBaseDate,
		},
		{
			name:            "preserved without production date fails",
			acquisitionType: domain.AcquisitionHomemadePreserved,
			dates:           domain.ItemDates{},
			wantErr:         domain.ErrMissingBaseDate,
		},
		{
			name:            "printed date items have no base date",
			acquisitionType: domain.AcquisitionPurchasedFresh,
			dates:           domain.ItemDates{BestBeforeDate: bestBefore},
			wantErr:         domain.ErrMissingBaseDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseDate(tt.acquisitionType, tt.dates)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("BaseDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BaseDate() = %v, want %v", got, tt.want)
			}
		})
	}
}
