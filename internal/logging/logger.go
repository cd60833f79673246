// Package logging builds the zap logger used by count.
// Logs go to stderr only; stdout carries nothing but program output.
package logging

import (
	"fmt"

	"count/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryConfig Category = "config" // Config loading and validation
	CategoryDriver Category = "driver" // Line rendering and output
)

// New builds a logger from cfg. Level and format are validated here as
// well as in config.Validate so New can be used on its own.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	switch cfg.Format {
	case "", "json":
		zc.Encoding = "json"
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns a sub-logger scoped to category.
func For(logger *zap.Logger, category Category) *zap.Logger {
	return logger.Named(string(category))
}

// WithRun tags every entry from logger with a fresh run_id.
func WithRun(logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("run_id", uuid.NewString()))
}
