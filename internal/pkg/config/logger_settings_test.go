//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	file := func(maxSize, maxBackups, maxAge int) *LoggerSettings {
		return &LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeFile,
			FilePath:   "/var/log/yates/api.log",
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     maxAge,
		}
	}

	tests := []struct {
		name        string
		settings    *LoggerSettings
		errContains string
	}{
		{"console", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}, ""},
		{"json with service", &LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeJSON, Service: "yates-rest-api"}, ""},
		{"rotated file", file(10, 3, 28), ""},
		{"missing level", &LoggerSettings{LogType: LogTypeConsole}, "LogLevel"},
		{"unknown level", &LoggerSettings{LogLevel: "verbose", LogType: LogTypeConsole}, "LogLevel"},
		{"unknown type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, "LogType"},
		{"file without path", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, MaxSize: 10, MaxBackups: 3, MaxAge: 28}, "FilePath"},
		{"file without rotation", file(0, 0, 0), "max size"},
		{"file too large", file(101, 3, 28), "max size"},
		{"too many backups", file(10, 11, 28), "max backups"},
		{"kept too long", file(10, 3, 400), "max age"},
		{"console ignores rotation", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, MaxSize: 1_000}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
