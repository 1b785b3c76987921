package config

import "strings"

// Default values applied by Normalize.
const (
	DefaultMode         = "auto"
	DefaultLogLevel     = "debug"
	DefaultTransitionMs = 400
	DefaultAdvanceMs    = 300
	DefaultProcessingMs = 1000
)

// Normalize lowercases enums and fills unset fields with defaults.
func Normalize(cfg *Config) {
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultMode
	}
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
	cfg.Questions.Path = strings.TrimSpace(cfg.Questions.Path)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Timings.TransitionMs = withDefault(cfg.Timings.TransitionMs, DefaultTransitionMs)
	cfg.Timings.AdvanceMs = withDefault(cfg.Timings.AdvanceMs, DefaultAdvanceMs)
	cfg.Timings.ProcessingMs = withDefault(cfg.Timings.ProcessingMs, DefaultProcessingMs)
}

func withDefault(value *int, fallback int) *int {
	if value != nil {
		return value
	}
	return &fallback
}
