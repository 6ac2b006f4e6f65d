// Package main provides the battle forecast server binary that serves
// forecasts over gRPC from a YAML content library.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/battlecalc/internal/config"
	"github.com/cory-johannsen/battlecalc/internal/observability"
	"github.com/cory-johannsen/battlecalc/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "content library directory; overrides content.dir")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting battle server",
		zap.String("grpc_addr", cfg.Server.Addr()),
		zap.String("content_dir", cfg.Content.Dir),
		zap.Bool("clamp_percentages", cfg.Forecast.ClampPercentages),
	)

	ctx := context.Background()
	app, err := initializeApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("initializing server", zap.Error(err))
	}

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func() error {
			lis, err := net.Listen("tcp", cfg.Server.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.Server.Addr(), err)
			}
			logger.Info("gRPC server listening",
				zap.String("addr", lis.Addr().String()),
				zap.Duration("startup", time.Since(start)),
			)
			return app.GRPC.Serve(lis)
		},
		StopFn: func() {
			stopGracefully(app.GRPC, cfg.Server.ShutdownTimeout, logger)
		},
	})

	if err := lifecycle.Run(ctx); err != nil {
		logger.Error("server exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// stopGracefully drains in-flight RPCs, forcing a hard stop once timeout elapses.
func stopGracefully(gs *grpc.Server, timeout time.Duration, logger *zap.Logger) {
	done := make(chan struct{})
	go func() {
		gs.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		logger.Warn("graceful stop timed out, forcing", zap.Duration("timeout", timeout))
		gs.Stop()
		<-done
	}
}
