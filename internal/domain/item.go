package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// ItemDates holds the dates an item carries. BestBeforeDate is the printed
// date, or the production date for homemade items. FreezeDate is set only
// when the item was frozen after acquisition.
type ItemDates struct {
	BestBeforeDate civil.Date
	FreezeDate     *civil.Date
}

type Item struct {
	ID              int64
	ProductName     string
	AcquisitionType AcquisitionType
	CategoryID      *int64
	Dates           ItemDates
	Quantity        float64
	Unit            string
	Consumed        bool
	CreatedAt       time.Time
	// DatesErr is set by listings when the stored dates could not be read.
	// Dates is empty in that case.
	DatesErr error
}
