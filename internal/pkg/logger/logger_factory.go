package logger

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/natefinch/lumberjack"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger builds the process wide logger from settings. Only the first call has an effect.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(c *config.LoggerSettings) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	handler, err := newHandler(c)
	if err != nil {
		return nil, err
	}

	l := slog.New(handler)
	if c.Service != "" {
		l = l.With(slog.String("service", c.Service))
	}
	return &slogLogger{logger: l}, nil
}

func newHandler(c *config.LoggerSettings) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}

	switch c.LogType {
	case config.LogTypeConsole:
		return slog.NewTextHandler(os.Stdout, opts), nil
	case config.LogTypeJSON:
		return slog.NewJSONHandler(os.Stdout, opts), nil
	case config.LogTypeFile:
		return slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   c.FilePath,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}, opts), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", c.LogType)
	}
}

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
