package config

import (
	"errors"
	"fmt"

	"github.com/dshills/celledit/internal/engine"
)

// Config is the complete application configuration.
type Config struct {
	Editor    EditorConfig    `toml:"editor" yaml:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard" yaml:"clipboard"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

// EditorConfig holds settings passed to every cell's edit engine.
type EditorConfig struct {
	AutoPair      bool   `toml:"auto_pair" yaml:"auto_pair"`
	MatchBrackets bool   `toml:"match_brackets" yaml:"match_brackets"`
	TabWidth      int    `toml:"tab_width" yaml:"tab_width"`
	Terminators   string `toml:"terminators" yaml:"terminators"`
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Backend string `toml:"backend" yaml:"backend"`
}

// LogConfig configures the application log.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			AutoPair:      true,
			MatchBrackets: true,
			TabWidth:      engine.DefaultTabWidth,
			Terminators:   engine.DefaultTerminators,
		},
		Clipboard: ClipboardConfig{Backend: "system"},
		Log:       LogConfig{Level: "info"},
	}
}

var (
	validBackends  = map[string]bool{"system": true, "memory": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
)

// Validate checks every setting and returns all problems found.
func (c Config) Validate() error {
	var errs []error
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidTabWidth, c.Editor.TabWidth))
	}
	if c.Editor.Terminators == "" {
		errs = append(errs, ErrInvalidTerminators)
	}
	if !validBackends[c.Clipboard.Backend] {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBackend, c.Clipboard.Backend))
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level))
	}
	return errors.Join(errs...)
}

// EngineOptions returns the engine options for the editor settings.
func (c Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithAutoPair(c.Editor.AutoPair),
		engine.WithBracketMatching(c.Editor.MatchBrackets),
		engine.WithTabWidth(c.Editor.TabWidth),
		engine.WithTerminators(c.Editor.Terminators),
	}
}
