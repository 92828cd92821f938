package threshold

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

// Source yields a value for key, or false when it has none. Sources swallow
// their own failures so that a broken level falls through to the next one.
type Source func(ctx context.Context, key string) (int, bool)

// Lookup walks sources in order and returns the first value found, or
// fallback when no source has one.
func Lookup(ctx context.Context, key string, fallback int, sources ...Source) int {
	for _, source := range sources {
		if v, ok := source(ctx, key); ok {
			return v
		}
	}
	return fallback
}

func UserPreference(prefs domain.PreferenceRepository, userID int64) Source {
	return func(ctx context.Context, key string) (int, bool) {
		v, found, err := prefs.GetUserPreference(ctx, userID, key)
		if err != nil {
			slog.WarnContext(ctx, "ignoring user preference",
				slog.Int64("user_id", userID),
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			return 0, false
		}
		return v, found
	}
}

func SystemSetting(settings domain.SettingsRepository) Source {
	return func(ctx context.Context, key string) (int, bool) {
		raw, found, err := settings.GetSystemSetting(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "ignoring system setting",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			return 0, false
		}
		if !found {
			return 0, false
		}

		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			slog.WarnContext(ctx, "system setting is not an integer",
				slog.String("key", key),
				slog.String("value", raw),
			)
			return 0, false
		}
		return v, true
	}
}

// Resolver resolves expiry thresholds as user preference, then system
// setting, then hardcoded default. Each threshold is resolved on its own.
type Resolver struct {
	settings domain.SettingsRepository
	prefs    domain.PreferenceRepository
}

func NewResolver(settings domain.SettingsRepository, prefs domain.PreferenceRepository) *Resolver {
	return &Resolver{
		settings: settings,
		prefs:    prefs,
	}
}

func (r *Resolver) Resolve(ctx context.Context, userID *int64) domain.Thresholds {
	sources := r.sources(userID)

	return domain.Thresholds{
		CriticalDays: Lookup(ctx, domain.CriticalDaysKey, domain.DefaultCriticalDays, sources...),
		WarningDays:  Lookup(ctx, domain.WarningDaysKey, domain.DefaultWarningDays, sources...),
	}
}

func (r *Resolver) sources(userID *int64) []Source {
	sources := make([]Source, 0, 2)
	if userID != nil && r.prefs != nil {
		sources = append(sources, UserPreference(r.prefs, *userID))
	}
	if r.settings != nil {
		sources = append(sources, SystemSetting(r.settings))
	}
	return sources
}
