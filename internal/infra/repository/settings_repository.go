package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

type settingsRepository struct {
	client *redis.Client
	key    string
}

// NewSettingsRepository stores system settings as fields of the hash at key.
func NewSettingsRepository(client *redis.Client, key string) domain.SettingsRepository {
	return &settingsRepository{
		client: client,
		key:    key,
	}
}

func (r *settingsRepository) GetSystemSetting(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.HGet(ctx, r.key, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	return val, true, nil
}

func (r *settingsRepository) SetSystemSetting(ctx context.Context, key, value string) error {
	if err := r.client.HSet(ctx, r.key, key, value).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}
	return nil
}

type preferenceRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewPreferenceRepository stores each user's preferences in its own hash,
// named keyPrefix followed by the user id.
func NewPreferenceRepository(client *redis.Client, keyPrefix string) domain.PreferenceRepository {
	return &preferenceRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *preferenceRepository) userKey(userID int64) string {
	return r.keyPrefix + strconv.FormatInt(userID, 10)
}

func (r *preferenceRepository) GetUserPreference(ctx context.Context, userID int64, key string) (int, bool, error) {
	val, err := r.client.HGet(ctx, r.userKey(userID), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", domain.ErrInvalidPreferenceValue, key, val)
	}

	return n, true, nil
}

func (r *preferenceRepository) SetUserPreference(ctx context.Context, userID int64, key string, value int) error {
	if err := r.client.HSet(ctx, r.userKey(userID), key, value).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}
	return nil
}
