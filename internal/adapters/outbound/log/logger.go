package log

import (
	"context"
	"fmt"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON logger writing up to info to stdout and warnings and above to stderr.
// Records below level are dropped.
func NewLogger(level zapcore.Level, development bool) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	if development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lowLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l < zapcore.WarnLevel
	})
	highLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), lowLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stderr), highLevel),
	)

	return zap.New(core, zap.AddCaller())
}

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level       string `config:"LOG_LEVEL" default:"info"`
	Development bool   `config:"LOG_DEVELOPMENT" default:"false"`
	logger      *zap.Logger
}

// Initialize registers the logger in the dependency container.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	level, err := zapcore.ParseLevel(il.Level)
	if err != nil {
		return ctx, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	il.logger = NewLogger(level, il.Development).Named("todoapp")
	depend.Register(il.logger)
	return ctx, nil
}

// Close flushes buffered log entries.
func (il *InitLogger) Close() {
	if il.logger != nil {
		_ = il.logger.Sync()
	}
}
