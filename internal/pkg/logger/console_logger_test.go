//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelInfo)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestTextLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelDebug).Named("mail")

	logger.Debug("conversation started")

	output := buf.String()
	assert.Contains(t, output, "conversation started")
	assert.Contains(t, output, "component=mail")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

func TestTextLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelInfo)

	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}
