package config

import "errors"

var (
	ErrRedisAddrMissing          = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB            = errors.New("REDIS_DB must be a valid integer")
	ErrDatabaseDSNMissing        = errors.New("DATABASE_DSN is required")
	ErrUnsupportedDatabaseDriver = errors.New("DATABASE_DRIVER must be sqlite or postgres")
)
