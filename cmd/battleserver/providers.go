package main

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/battlecalc/internal/battleserver"
	"github.com/cory-johannsen/battlecalc/internal/config"
	"github.com/cory-johannsen/battlecalc/internal/content"
	"github.com/cory-johannsen/battlecalc/internal/forecast"
	"github.com/cory-johannsen/battlecalc/internal/observability"
)

// App holds the assembled server dependencies.
type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Library *content.Library
	GRPC    *grpc.Server
}

var providerSet = wire.NewSet(
	provideLibrary,
	provideResolver,
	provideForecastServer,
	provideGRPCServer,
	wire.Struct(new(App), "*"),
)

func provideLibrary(ctx context.Context, cfg config.Config, logger *zap.Logger) (*content.Library, error) {
	return content.Load(ctx, cfg.Content.Dir, observability.Component(logger, observability.SubsystemContent))
}

func provideResolver(lib *content.Library, cfg config.Config) *forecast.Resolver {
	return forecast.NewResolver(lib, forecast.WithClamp(cfg.Forecast.ClampPercentages))
}

func provideForecastServer(resolver *forecast.Resolver, logger *zap.Logger) *battleserver.Server {
	return battleserver.NewServer(resolver, observability.Component(logger, observability.SubsystemForecast))
}

func provideGRPCServer(srv *battleserver.Server, logger *zap.Logger) *grpc.Server {
	return battleserver.NewGRPCServer(srv, observability.Component(logger, observability.SubsystemRPC))
}
