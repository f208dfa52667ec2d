package log

import (
	"fmt"
	"strings"
)

// Config declares how to build a Logger.
type Config struct {
	// Level is debug|info|warn|error. Empty means info.
	Level string `json:"level" yaml:"level"`
	// Format is text|json. Empty means text.
	Format string `json:"format" yaml:"format"`
	// Outputs lists console, null or file:<path>. Empty means console.
	Outputs []string `json:"outputs" yaml:"outputs"`
}

// ApplyConfig builds a logger from cfg.
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var formatter Formatter
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("log: unknown format %q; use text|json", cfg.Format)
	}

	opts := []LoggerOption{WithLevel(level), WithFormatter(formatter)}
	for _, out := range cfg.Outputs {
		switch {
		case out == "console":
			opts = append(opts, WithOutput(NewConsoleOutput()))
		case out == "null":
			opts = append(opts, WithOutput(NullOutput{}))
		case strings.HasPrefix(out, "file:"):
			f, err := NewFileOutput(strings.TrimPrefix(out, "file:"))
			if err != nil {
				return nil, fmt.Errorf("log: open output: %w", err)
			}
			opts = append(opts, WithOutput(f))
		default:
			return nil, fmt.Errorf("log: unknown output %q", out)
		}
	}
	return NewLogger(opts...), nil
}
