package testutil

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
)

// SetupTestLogger returns a debug level console logger tagged with the test name.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	return logger.NewConsoleLogger(config.LogLevelDebug).Named(t.Name())
}

// RecordingLogger keeps every record in memory, prefixed with its level
type RecordingLogger struct {
	mu      sync.Mutex
	records []string
}

func (l *RecordingLogger) record(level string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, level+" "+fmt.Sprint(args...))
}

func (l *RecordingLogger) Debug(args ...interface{}) { l.record("DEBUG", args) }
func (l *RecordingLogger) Info(args ...interface{})  { l.record("INFO", args) }
func (l *RecordingLogger) Warn(args ...interface{})  { l.record("WARN", args) }
func (l *RecordingLogger) Error(args ...interface{}) { l.record("ERROR", args) }
func (l *RecordingLogger) Fatal(args ...interface{}) { l.record("FATAL", args) }

func (l *RecordingLogger) Panic(args ...interface{}) {
	l.record("PANIC", args)
	panic(fmt.Sprint(args...))
}

func (l *RecordingLogger) Named(string) logger.Logger { return l }

// Records returns the records of the given level, without the level prefix
func (l *RecordingLogger) Records(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string
	for _, r := range l.records {
		if rest, ok := strings.CutPrefix(r, level+" "); ok {
			out = append(out, rest)
		}
	}
	return out
}
