package storage

import (
	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

// profiles is the fixed acquisition-to-storage mapping. Items whose type maps
// to StorageProfileNone are judged by their printed best-before date.
var profiles = map[domain.AcquisitionType]domain.StorageProfile{
	domain.AcquisitionPurchasedFresh:      domain.StorageProfileNone,
	domain.AcquisitionPurchasedFrozen:     domain.StorageProfileNone,
	domain.AcquisitionPurchasedThenFrozen: domain.StorageProfileFrozen,
	domain.AcquisitionHomemadeFrozen:      domain.StorageProfileFrozen,
	domain.AcquisitionHomemadePreserved:   domain.StorageProfileAmbient,
}

func ResolveProfile(acquisitionType domain.AcquisitionType) domain.StorageProfile {
	return profiles[acquisitionType]
}

// RequiresFreezeDate reports whether items of this type need a freeze date
// before their expiry can be calculated.
func RequiresFreezeDate(acquisitionType domain.AcquisitionType) bool {
	return ResolveProfile(acquisitionType) == domain.StorageProfileFrozen
}

// BaseDate selects the date that shelf-life months are counted from.
// Frozen items count from the freeze date, preserved items from the
// production date carried in BestBeforeDate.
func BaseDate(acquisitionType domain.AcquisitionType, dates domain.ItemDates) (civil.Date, error) {
	switch ResolveProfile(acquisitionType) {
	case domain.StorageProfileFrozen:
		if dates.FreezeDate == nil {
			return civil.Date{}, domain.ErrMissingBaseDate
		}
		return *dates.FreezeDate, nil
	case domain.StorageProfileAmbient:
		if !dates.BestBeforeDate.IsValid() {
			return civil.Date{}, domain.ErrMissingBaseDate
		}
		return dates.BestBeforeDate, nil
	default:
		return civil.Date{}, domain.ErrMissingBaseDate
	}
}
