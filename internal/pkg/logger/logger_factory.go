package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
)

// The REST API and every CLI command handler share one process logger.
var (
	processLogger Logger
	processErr    error
	processOnce   sync.Once
)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process logger from the logger block of the
// configuration. Only the first call has an effect.
func InitLogger(settings *config.LoggerSettings) error {
	processOnce.Do(func() {
		processLogger, processErr = fromSettings(settings)
	})
	return processErr
}

// GetLogger returns the process logger.
func GetLogger() (Logger, error) {
	if processLogger == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return processLogger, nil
}

func fromSettings(s *config.LoggerSettings) (Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if s.LogType == config.LogTypeFile {
		return NewFileLogger(s.LogLevel, s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge), nil
	}
	return NewConsoleLogger(s.LogLevel), nil
}

// parseLevel falls back to info for unknown levels.
func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

// formatArgs joins args the way fmt.Sprint does, so callers can write
// log.Info("Created prospect with id ", id).
func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
