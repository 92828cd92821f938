package evaluation

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

// Input is everything needed to evaluate one item. ItemID is zero for
// ad-hoc evaluations that do not refer to a stored item.
type Input struct {
	ItemID          int64
	AcquisitionType domain.AcquisitionType
	CategoryID      *int64
	Dates           domain.ItemDates
	UserID          *int64
}

func InputFromItem(item *domain.Item, userID *int64) Input {
	return Input{
		ItemID:          item.ID,
		AcquisitionType: item.AcquisitionType,
		CategoryID:      item.CategoryID,
		Dates:           item.Dates,
		UserID:          userID,
	}
}

type Evaluation struct {
	ItemID          int64
	AcquisitionType domain.AcquisitionType
	CategoryID      *int64
	Profile         domain.StorageProfile
	Result          domain.ExpiryResult
	Status          domain.Status
	DaysRemaining   *int
	Thresholds      domain.Thresholds
	EvaluatedOn     civil.Date
	EvaluatedAt     time.Time
	// Error is set by EvaluateActive for items that could not be evaluated.
	Error string
}

func (e *Evaluation) Known() bool {
	return e.Result.Known()
}

func (e *Evaluation) record() domain.StatusRecord {
	return domain.StatusRecord{
		ItemID:        e.ItemID,
		CategoryID:    e.CategoryID,
		Profile:       e.Profile,
		Status:        e.Status,
		DaysRemaining: e.DaysRemaining,
		Thresholds:    e.Thresholds,
		EvaluatedAt:   e.EvaluatedAt,
	}
}
