package config

import (
	"os"
	"strings"
)

const (
	databaseDriverEnv      = "DATABASE_DRIVER"
	databaseDSNEnv         = "DATABASE_DSN"
	databaseAutoMigrateEnv = "DATABASE_AUTO_MIGRATE"
	seedShelfLifeEnv       = "SEED_SHELF_LIFE_DEFAULTS"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultDatabaseDriver = DriverSQLite
	defaultDatabaseDSN    = "file:pantry.db?_foreign_keys=on"
)

type DatabaseConfig struct {
	Driver       string
	DSN          string
	AutoMigrate  bool
	SeedDefaults bool
}

func LoadDatabaseConfig() *DatabaseConfig {
	driver := strings.ToLower(os.Getenv(databaseDriverEnv))
	if driver == "" {
		driver = defaultDatabaseDriver
	}

	dsn := os.Getenv(databaseDSNEnv)
	if dsn == "" && driver == DriverSQLite {
		dsn = defaultDatabaseDSN
	}

	return &DatabaseConfig{
		Driver:       driver,
		DSN:          dsn,
		AutoMigrate:  os.Getenv(databaseAutoMigrateEnv) != "false",
		SeedDefaults: os.Getenv(seedShelfLifeEnv) == "true",
	}
}

func (c *DatabaseConfig) Validate() error {
	if c == nil {
		return ErrDatabaseDSNMissing
	}
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return ErrUnsupportedDatabaseDriver
	}
	if c.DSN == "" {
		return ErrDatabaseDSNMissing
	}
	return nil
}
