package domain

import "errors"

var (
	ErrUnknownAcquisitionType = errors.New("unknown acquisition type")
	ErrUnknownStorageProfile  = errors.New("unknown storage profile")
	ErrMissingBaseDate        = errors.New("base date required for shelf-life calculation is missing")
	ErrNoExpiryDates          = errors.New("no expiry dates to classify")
	ErrInvalidShelfLifeWindow = errors.New("invalid shelf-life window")
	ErrShelfLifeNotFound      = errors.New("shelf life not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrInvalidCategory        = errors.New("invalid category")
	ErrCategoryExists         = errors.New("category already exists")
	ErrItemNotFound           = errors.New("item not found")
	ErrInvalidPreferenceValue = errors.New("invalid preference value")
	ErrInvalidItemDates       = errors.New("invalid stored item date")
)
