package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings is the logger block of rest-app.yaml. Rotation fields only
// apply to the file output.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// Validate checks the level and output, then the rotation policy of file output.
// Every rotation problem is reported at once.
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for logger settings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}

	var errs []error
	if s.MaxSize < 1 || s.MaxSize > 100 {
		errs = append(errs, fmt.Errorf("logger.max_size must be between 1 and 100 MB, got %d", s.MaxSize))
	}
	if s.MaxBackups < 1 || s.MaxBackups > 10 {
		errs = append(errs, fmt.Errorf("logger.max_backups must be between 1 and 10, got %d", s.MaxBackups))
	}
	if s.MaxAge < 1 || s.MaxAge > 365 {
		errs = append(errs, fmt.Errorf("logger.max_age must be between 1 and 365 days, got %d", s.MaxAge))
	}
	return errors.Join(errs...)
}
