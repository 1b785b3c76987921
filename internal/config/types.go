package config

// Config is the optional .itsss.yml file.
type Config struct {
	Version   int             `yaml:"version"`
	UI        UIConfig        `yaml:"ui"`
	Timings   TimingsConfig   `yaml:"timings"`
	Log       LogConfig       `yaml:"log"`
	Questions QuestionsConfig `yaml:"questions"`
}

// UIConfig selects how the assessment is presented.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// TimingsConfig holds animation delays in milliseconds. Nil means default.
type TimingsConfig struct {
	TransitionMs *int `yaml:"transition_ms"`
	AdvanceMs    *int `yaml:"advance_ms"`
	ProcessingMs *int `yaml:"processing_ms"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// QuestionsConfig points at a replacement question bank. Relative paths are
// resolved against the config file's directory.
type QuestionsConfig struct {
	Path string `yaml:"path"`
}
