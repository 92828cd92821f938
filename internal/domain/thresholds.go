package domain

const (
	CriticalDaysKey = "expiry_critical_days"
	WarningDaysKey  = "expiry_warning_days"

	DefaultCriticalDays = 3
	DefaultWarningDays  = 7
)

// Thresholds convert a day gap into an urgency status. They are resolved
// per request and never stored as a unit.
type Thresholds struct {
	CriticalDays int `json:"critical_days"`
	WarningDays  int `json:"warning_days"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalDays: DefaultCriticalDays,
		WarningDays:  DefaultWarningDays,
	}
}
