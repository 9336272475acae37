// Package logger builds the application logger. The TUI owns the
// terminal, so logs go to a file under the user cache directory instead
// of stderr.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a logger writing JSON lines to kotoba.log. debug lowers the
// level threshold.
func New(debug bool) (*zap.Logger, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	dir = filepath.Join(dir, "kotoba")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{filepath.Join(dir, "kotoba.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	return cfg.Build()
}

// Nop returns a logger that discards everything. Used by tests and by
// components run outside the app shell.
func Nop() *zap.Logger {
	return zap.NewNop()
}
