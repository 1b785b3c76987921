// Package logging builds the optional debug logger. Output only goes to a
// file, never to the terminal the assessment is drawn on.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the debug logger.
type Options struct {
	// Path is the log file; empty disables logging.
	Path  string
	Level string
}

// New returns a JSON file logger, or a no-op logger when Path is empty.
func New(opts Options) (*zap.Logger, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return zap.NewNop(), nil
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("itsss"), nil
}

// ParseLevel converts a level name; empty means debug.
func ParseLevel(value string) (zapcore.Level, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return zapcore.DebugLevel, nil
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.DebugLevel, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}
