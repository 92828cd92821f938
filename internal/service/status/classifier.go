package status

import (
	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

// DaysUntil returns the signed number of days from today to d.
// Past dates are negative.
func DaysUntil(today, d civil.Date) int {
	return d.DaysSince(today)
}

// Classify derives the urgency of an expiry result.
//
// A best-before date takes precedence and is judged on its own. Otherwise the
// max date drives the critical zone and the optimal date marks the start of
// the warning zone. A single known date of the pair is judged like a
// best-before date. Classify returns ErrNoExpiryDates when nothing is known;
// callers report that as unknown instead of picking a status.
func Classify(today civil.Date, result domain.ExpiryResult, th domain.Thresholds) (domain.Status, error) {
	if result.BestBeforeDate != nil {
		return classifyDate(today, *result.BestBeforeDate, th), nil
	}

	switch {
	case result.OptimalDate != nil && result.MaxDate != nil:
		return classifyWindow(today, *result.OptimalDate, *result.MaxDate, th), nil
	case result.MaxDate != nil:
		return classifyDate(today, *result.MaxDate, th), nil
	case result.OptimalDate != nil:
		return classifyDate(today, *result.OptimalDate, th), nil
	default:
		return "", domain.ErrNoExpiryDates
	}
}

// ClassifyDefault classifies with the hardcoded 3/7 day thresholds.
func ClassifyDefault(today civil.Date, result domain.ExpiryResult) (domain.Status, error) {
	return Classify(today, result, domain.DefaultThresholds())
}

// classifyDate checks critical first with a strict bound and warning with an
// inclusive one, so critical wins when critical_days > warning_days.
func classifyDate(today, d civil.Date, th domain.Thresholds) domain.Status {
	days := DaysUntil(today, d)
	if days < th.CriticalDays {
		return domain.StatusCritical
	}
	if days <= th.WarningDays {
		return domain.StatusWarning
	}
	return domain.StatusOK
}

func classifyWindow(today, optimal, maxDate civil.Date, th domain.Thresholds) domain.Status {
	// Past max_date yields a negative count and always lands here.
	if DaysUntil(today, maxDate) < th.CriticalDays {
		return domain.StatusCritical
	}
	if !today.Before(optimal) {
		return domain.StatusWarning
	}
	return domain.StatusOK
}
