package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	redisAddrEnv      = "REDIS_ADDR"
	redisPasswordEnv  = "REDIS_PASSWORD"
	redisDBEnv        = "REDIS_DB"
	redisTLSEnv       = "REDIS_TLS"
	redisKeyPrefixEnv = "REDIS_KEY_PREFIX"

	defaultRedisAddr = "localhost:6379"
	defaultRedisDB   = 0

	systemSettingsKey        = "settings:system"
	userPreferencesKeyPrefix = "prefs:user:"
)

// RedisConfig locates the settings store. KeyPrefix namespaces every hash so
// several deployments can share one database.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	TLS       bool
	KeyPrefix string
}

func LoadRedisConfig() (*RedisConfig, error) {
	addr := os.Getenv(redisAddrEnv)
	if addr == "" {
		addr = defaultRedisAddr
	}

	db := defaultRedisDB
	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidRedisDB
		}
		db = parsed
	}

	prefix := strings.TrimSpace(os.Getenv(redisKeyPrefixEnv))
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}

	return &RedisConfig{
		Addr:      addr,
		Password:  os.Getenv(redisPasswordEnv),
		DB:        db,
		TLS:       os.Getenv(redisTLSEnv) == "true",
		KeyPrefix: prefix,
	}, nil
}

// SettingsKey is the hash holding system-wide settings.
func (c *RedisConfig) SettingsKey() string {
	return c.KeyPrefix + systemSettingsKey
}

// PreferencesKeyPrefix is prepended to a user id to name that user's
// preference hash.
func (c *RedisConfig) PreferencesKeyPrefix() string {
	return c.KeyPrefix + userPreferencesKeyPrefix
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}
