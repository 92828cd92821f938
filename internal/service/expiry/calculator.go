package expiry

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/jinzhu/now"
)

// AddMonths adds calendar months to d. The day of month is kept when the
// target month has it; otherwise the result is the last day of that month.
func AddMonths(d civil.Date, months int) civil.Date {
	// time.Date normalises month overflow into the year.
	first := time.Date(d.Year, d.Month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := now.With(first).EndOfMonth().Day()

	day := d.Day
	if day > lastDay {
		day = lastDay
	}

	return civil.Date{Year: first.Year(), Month: first.Month(), Day: day}
}

// CalculateDates returns the optimal and maximum storage dates for an item
// stored since base. Both dates are offset from base independently so that
// month-end clamping of one never leaks into the other.
func CalculateDates(base civil.Date, monthsMin, monthsMax int) (optimal, maximum civil.Date) {
	return AddMonths(base, monthsMin), AddMonths(base, monthsMax)
}
