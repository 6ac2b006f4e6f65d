// Package observability builds the structured loggers shared by the forecast
// server and the battlecalc CLI.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/battlecalc/internal/config"
)

// ServiceName is attached to every log entry as the "service" field.
const ServiceName = "battlecalc"

// Subsystem names one part of the calculator for log filtering.
type Subsystem string

const (
	// SubsystemContent covers loading the class, item and skill library.
	SubsystemContent Subsystem = "content"
	// SubsystemForecast covers scenario resolution.
	SubsystemForecast Subsystem = "forecast"
	// SubsystemRPC covers the gRPC transport.
	SubsystemRPC Subsystem = "rpc"
	// SubsystemCLI covers the battlecalc command tree.
	SubsystemCLI Subsystem = "cli"
)

type options struct {
	minLevel    *zapcore.Level
	outputPaths []string
	fields      map[string]interface{}
}

// Option adjusts a logger built by NewLogger.
type Option func(*options)

// WithMinLevel raises the configured level to at least lvl. A configured level
// above lvl is kept.
func WithMinLevel(lvl zapcore.Level) Option {
	return func(o *options) { o.minLevel = &lvl }
}

// WithOutputPaths replaces the sinks entries are written to.
func WithOutputPaths(paths ...string) Option {
	return func(o *options) { o.outputPaths = paths }
}

// WithField attaches key=value to every entry.
func WithField(key string, value interface{}) Option {
	return func(o *options) { o.fields[key] = value }
}

// NewLogger creates a structured logger from the given logging configuration.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error. Every
// entry carries the "service" field.
func NewLogger(cfg config.LoggingConfig, opts ...Option) (*zap.Logger, error) {
	o := options{fields: map[string]interface{}{"service": ServiceName}}
	for _, opt := range opts {
		opt(&o)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	if o.minLevel != nil && level < *o.minLevel {
		level = *o.minLevel
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.InitialFields = o.fields
	if len(o.outputPaths) > 0 {
		zapCfg.OutputPaths = o.outputPaths
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// Component returns a child of logger named for sub and tagged with a
// "subsystem" field.
//
// Postcondition: a nil logger yields a no-op logger.
func Component(logger *zap.Logger, sub Subsystem) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(string(sub)).With(zap.String("subsystem", string(sub)))
}
