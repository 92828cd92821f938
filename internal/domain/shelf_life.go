package domain

import (
	"fmt"
	"time"
)

const (
	MinShelfLifeMonths = 1
	MaxShelfLifeMonths = 36
)

// ShelfLifeWindow is the researched storage time for one category under one
// storage profile. At most one window exists per (CategoryID, Profile).
type ShelfLifeWindow struct {
	ID         int64
	CategoryID int64
	Profile    StorageProfile
	MonthsMin  int
	MonthsMax  int
	SourceURL  string
	UpdatedAt  time.Time
}

// Validate is applied when a window is written. Reads trust stored data.
func (w *ShelfLifeWindow) Validate() error {
	if w.Profile.IsNone() {
		return fmt.Errorf("%w: storage profile is required", ErrInvalidShelfLifeWindow)
	}
	if w.MonthsMin < MinShelfLifeMonths || w.MonthsMin > MaxShelfLifeMonths {
		return fmt.Errorf("%w: months_min must be between %d and %d", ErrInvalidShelfLifeWindow, MinShelfLifeMonths, MaxShelfLifeMonths)
	}
	if w.MonthsMax < MinShelfLifeMonths || w.MonthsMax > MaxShelfLifeMonths {
		return fmt.Errorf("%w: months_max must be between %d and %d", ErrInvalidShelfLifeWindow, MinShelfLifeMonths, MaxShelfLifeMonths)
	}
	if w.MonthsMin > w.MonthsMax {
		return fmt.Errorf("%w: months_min must be <= months_max", ErrInvalidShelfLifeWindow)
	}
	return nil
}
