package domain

import "cloud.google.com/go/civil"

// ExpiryResult carries either the optimal/max pair or the single
// best-before date. All fields nil means the expiry is unknown.
type ExpiryResult struct {
	OptimalDate    *civil.Date
	MaxDate        *civil.Date
	BestBeforeDate *civil.Date
}

func (r ExpiryResult) Known() bool {
	return r.OptimalDate != nil || r.MaxDate != nil || r.BestBeforeDate != nil
}

// Status is the urgency of an item. It is derived on every read.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"

	// StatusUnknown is reported when there is nothing to classify.
	// The classifier itself never returns it.
	StatusUnknown Status = "unknown"
)

func (s Status) String() string {
	return string(s)
}

// Urgency orders statuses from most to least urgent.
func (s Status) Urgency() int {
	switch s {
	case StatusCritical:
		return 0
	case StatusWarning:
		return 1
	case StatusOK:
		return 2
	default:
		return 3
	}
}

// DeadlineDate is the date the urgency is measured against: the best-before
// date, else the max date, else the optimal date.
func (r ExpiryResult) DeadlineDate() *civil.Date {
	switch {
	case r.BestBeforeDate != nil:
		return r.BestBeforeDate
	case r.MaxDate != nil:
		return r.MaxDate
	default:
		return r.OptimalDate
	}
}
