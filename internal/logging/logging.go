// Package logging builds the application's zap logger. The terminal belongs
// to the UI, so logs only go to a rotating file, and nowhere when no file is
// configured.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger construction.
type Config struct {
	// File is the log file path. Empty disables logging.
	File string

	// Debug lowers the level from info to debug.
	Debug bool

	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept.
	MaxBackups int
}

// DefaultConfig returns a Config with logging disabled.
func DefaultConfig() Config {
	return Config{
		MaxSizeMB:  5,
		MaxBackups: 3,
	}
}

// New creates a JSON logger writing to cfg.File through lumberjack.
func New(cfg Config) *zap.Logger {
	if cfg.File == "" {
		return zap.NewNop()
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.InfoLevel
	if cfg.Debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		level,
	)
	return zap.New(core, zap.AddCaller())
}
