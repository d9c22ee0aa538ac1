package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/agency-analytics/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logPresets maps a logging format to the zap preset it starts from.
var logPresets = map[string]func() zap.Config{
	"json":    zap.NewProductionConfig,
	"console": zap.NewDevelopmentConfig,
}

// newLogger builds the session logger. A non-empty levelOverride (from
// --log-level) replaces the configured level; both default to info and json.
func newLogger(logging config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	levelName := logging.Level
	if levelOverride != "" {
		levelName = levelOverride
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	format := logging.Format
	if format == "" {
		format = "json"
	}
	preset, ok := logPresets[format]
	if !ok {
		return nil, fmt.Errorf("invalid log format %q, expected json or console", format)
	}
	zc := preset()
	zc.Level = zap.NewAtomicLevelAt(level)

	if logging.OutputFile != "" {
		if err := ensureLogFile(logging.OutputFile); err != nil {
			return nil, err
		}
		zc.OutputPaths = []string{logging.OutputFile}
		zc.ErrorOutputPaths = []string{logging.OutputFile}
	}

	return zc.Build()
}

// ensureLogFile creates the parent directory and checks the file is writable.
func ensureLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f.Close()
}
