// Package logger wraps zap behind a small global accessor.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.SugaredLogger

// Init builds the global logger. env "production" selects the JSON encoder;
// anything else gets the human-readable development config.
func Init(level, env string) error {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return err
	}
	global = log.Sugar()
	return nil
}

// Get returns the global logger, falling back to a development logger when
// Init has not been called (tests, ad-hoc tools).
func Get() *zap.SugaredLogger {
	if global == nil {
		log, _ := zap.NewDevelopment()
		global = log.Sugar()
	}
	return global
}

// Sync flushes buffered log entries.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
