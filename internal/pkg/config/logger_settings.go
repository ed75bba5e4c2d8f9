package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings selects the log output and level. The rotation fields only apply
// to the file output.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console json file"`
	Service    string `mapstructure:"service" validate:"max=64"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type rotationBound struct {
	name     string
	value    int
	min, max int
	unit     string
}

// Validate checks the settings and, for the file output, the rotation bounds
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}
	for _, b := range []rotationBound{
		{"max size", s.MaxSize, 1, 100, " MB"},
		{"max backups", s.MaxBackups, 1, 10, ""},
		{"max age", s.MaxAge, 1, 365, " days"},
	} {
		if b.value < b.min || b.value > b.max {
			return fmt.Errorf("%s must be between %d and %d%s, got %d", b.name, b.min, b.max, b.unit, b.value)
		}
	}
	return nil
}
