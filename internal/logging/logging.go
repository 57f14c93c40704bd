// Package logging builds the application logger.
//
// The tray process has no console, so log lines go to a file next to the
// config file. When that file cannot be opened the logger is a no-op rather
// than an error: logging must never keep the overlay from working.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created inside the config directory.
const FileName = "blanqr.log"

// DebugEnv enables debug-level logging when set to "1".
const DebugEnv = "BLANQR_DEBUG"

// Options controls logger construction.
type Options struct {
	// Dir is the directory holding the log file.
	Dir string
	// Debug lowers the level to Debug.
	Debug bool
}

// OptionsFromEnv returns Options for dir with Debug taken from DebugEnv.
func OptionsFromEnv(dir string) Options {
	return Options{Dir: dir, Debug: os.Getenv(DebugEnv) == "1"}
}

// New opens the log file and returns a logger plus a close func that
// flushes and closes it. On failure the returned logger is a no-op and the
// error explains why.
func New(opts Options) (*zap.Logger, func(), error) {
	if opts.Dir == "" {
		return zap.NewNop(), func() {}, fmt.Errorf("logging: no log directory")
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return zap.NewNop(), func() {}, fmt.Errorf("logging: failed to create %s: %w", opts.Dir, err)
	}
	path := filepath.Join(opts.Dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zap.NewNop(), func() {}, fmt.Errorf("logging: failed to open %s: %w", path, err)
	}
	logger := NewWithWriter(f, opts.Debug)
	return logger, func() {
		_ = logger.Sync()
		_ = f.Close()
	}, nil
}

// NewWithWriter returns a console-encoded logger writing to w.
func NewWithWriter(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
