package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/config"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/handler"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/health"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/infra/database"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/infra/repository"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/infra/statusrecorder"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/observability/metrics"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/observability/middleware"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/evaluation"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/shelflife"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/threshold"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to open database",
			slog.String("event", "database.connect.fail"),
			slog.String("driver", cfg.Database.Driver),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			return 1
		}
	}

	if cfg.Database.SeedDefaults {
		if _, err := repository.SeedShelfLifeDefaults(ctx, db); err != nil {
			slog.Error("failed to seed shelf-life defaults", slog.String("error", err.Error()))
			return 1
		}
	}

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	statusRecorder, err := statusrecorder.NewRecorder(ctx, statusrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize status recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := statusRecorder.Close(); err != nil {
			slog.Warn("failed to close status recorder", slog.String("error", err.Error()))
		}
	}()

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	expiryMetrics, err := metrics.NewExpiryMetrics()
	if err != nil {
		slog.Error("failed to initialize expiry metrics", slog.String("error", err.Error()))
		return 1
	}

	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	shelfLifeRepo := repository.NewShelfLifeRepository(db)
	settingsRepo := repository.NewSettingsRepository(redisClient, cfg.Redis.SettingsKey())
	preferenceRepo := repository.NewPreferenceRepository(redisClient, cfg.Redis.PreferencesKeyPrefix())

	thresholdResolver := threshold.NewResolver(settingsRepo, preferenceRepo)
	shelfLifeService := shelflife.NewService(shelfLifeRepo, categoryRepo)
	evaluationService := evaluation.NewService(
		itemRepo,
		shelflife.NewAdapter(shelfLifeRepo),
		thresholdResolver,
		evaluation.WithConcurrency(cfg.Evaluation.Concurrency),
		evaluation.WithRecorder(statusRecorder),
		evaluation.WithMetrics(expiryMetrics),
	)

	handlers := handler.Handlers{
		Expiry:    handler.NewExpiryHandler(evaluationService),
		ShelfLife: handler.NewShelfLifeHandler(shelfLifeService),
		Settings:  handler.NewSettingsHandler(settingsRepo, preferenceRepo, thresholdResolver),
	}

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      moduleName,
		TracerName:  "github.com/KasumiMercury/primind-pantry-expiry/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(Version,
		health.WithDatabase(db),
		health.WithRedis(redisClient),
	)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	handlers.Register(r.Group("/api/v1"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("database_driver", cfg.Database.Driver),
			slog.Int("evaluation_concurrency", cfg.Evaluation.Concurrency),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
