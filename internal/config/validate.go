package config

import (
	"fmt"
	"strings"
)

// MaxDelayMs bounds every configured delay.
const MaxDelayMs = 10000

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		add("ui.mode", fmt.Sprintf("unsupported mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	checkDelay := func(field string, value *int) {
		if value == nil {
			return
		}
		if *value < 0 || *value > MaxDelayMs {
			add(field, fmt.Sprintf("must be between 0 and %d", MaxDelayMs))
		}
	}
	checkDelay("timings.transition_ms", cfg.Timings.TransitionMs)
	checkDelay("timings.advance_ms", cfg.Timings.AdvanceMs)
	checkDelay("timings.processing_ms", cfg.Timings.ProcessingMs)

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		add("log.level", fmt.Sprintf("unsupported level %q (expected debug|info|warn|error)", cfg.Log.Level))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
