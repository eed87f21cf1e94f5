// Package logger holds the process-wide zap logger.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log level and encoding.
type Config struct {
	Level       string // debug, info, warn, error
	Development bool   // colored console output
	Sampling    bool   // drop repeated messages, for per-tick logs
}

// DefaultConfig logs info and above to the console.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Development: true,
		Sampling:    true,
	}
}

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// New builds a zap logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Sampling {
		zapConfig.Sampling = &zap.SamplingConfig{
			Initial:    10,
			Thereafter: 100,
		}
	} else {
		zapConfig.Sampling = nil
	}

	return zapConfig.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// Init builds the process logger and installs it.
func Init(cfg Config) (*zap.Logger, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	Set(l)
	return l, nil
}

// Set installs l as the process logger. A nil logger installs a no-op.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// L returns the process logger. It is a no-op until Init or Set.
func L() *zap.Logger {
	return current.Load()
}

// System returns the process logger tagged with a subsystem name.
func System(name string) *zap.Logger {
	return L().With(zap.String("system", name))
}
