package domain

import "context"

//go:generate mockgen -source=settings_repository.go -destination=settings_repository_mock.go -package=domain

// SettingsRepository stores admin-configured system-wide values as strings.
type SettingsRepository interface {
	GetSystemSetting(ctx context.Context, key string) (value string, found bool, err error)
	SetSystemSetting(ctx context.Context, key, value string) error
}

// PreferenceRepository stores per-user integer preferences.
// A stored value that is not an integer yields ErrInvalidPreferenceValue.
type PreferenceRepository interface {
	GetUserPreference(ctx context.Context, userID int64, key string) (value int, found bool, err error)
	SetUserPreference(ctx context.Context, userID int64, key string, value int) error
}
