package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Port         string
	LogLevel     slog.Level
	Env          string
	OTLPEndpoint string
	Database     *DatabaseConfig
	Redis        *RedisConfig
	Evaluation   *EvaluationConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         port,
		LogLevel:     parseLogLevel(os.Getenv("LOG_LEVEL")),
		Env:          env,
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Database:     LoadDatabaseConfig(),
		Redis:        redisConfig,
		Evaluation:   LoadEvaluationConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
