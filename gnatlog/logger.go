package gnatlog

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production-configured zap.Logger tagged with tool and a
// fresh run id, and returns the run id alongside it so a caller can
// include it in output file names or error messages.
func New(tool string) (*zap.Logger, string, error) {
	runID := uuid.NewString()

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, "", fmt.Errorf("gnatlog: building logger: %w", err)
	}

	return logger.With(zap.String("tool", tool), zap.String("run_id", runID)), runID, nil
}

// NewDevelopment builds a human-readable console logger for local runs,
// tagged the same way as New.
func NewDevelopment(tool string) (*zap.Logger, string, error) {
	runID := uuid.NewString()

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, "", fmt.Errorf("gnatlog: building development logger: %w", err)
	}

	return logger.With(zap.String("tool", tool), zap.String("run_id", runID)), runID, nil
}
