// Package logging builds projectdeck's zap logger. The TUI owns the
// terminal, so entries are written as JSON lines to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log destination and level.
type Config struct {
	File  string
	Level string
}

// New opens cfg.File for appending and returns a logger writing to it.
// The returned close func syncs and closes the file.
func New(cfg Config) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	if cfg.File == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(newEncoder(), zapcore.AddSync(f), level)
	logger := zap.New(core, zap.AddCaller())
	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

func newEncoder() zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(encoderCfg)
}
