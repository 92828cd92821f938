package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/config"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/observability"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/observability/logging"
)

const moduleName = logging.Module("pantry-expiry")

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "pantry-expiry"
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("SERVICE_REVISION"),
		},
		Environment:   logging.Environment(cfg.Env),
		LogLevel:      cfg.LogLevel,
		OTLPEndpoint:  cfg.OTLPEndpoint,
		SamplingRate:  1.0,
		DefaultModule: moduleName,
	})
}
