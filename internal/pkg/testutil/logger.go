package testutil

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/logger"
)

// SetupTestLogger returns a console logger for tests. TEST_LOG_LEVEL overrides
// the default warning level, e.g. TEST_LOG_LEVEL=debug to trace key file handling.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	level := os.Getenv("TEST_LOG_LEVEL")
	if level == "" {
		level = config.LogLevelWarning
	}
	return logger.NewConsoleLogger(level)
}

// RecordingLogger keeps every message so tests can assert on what was logged.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry is one message seen by a RecordingLogger
type LogEntry struct {
	Level   string
	Message string
}

func (l *RecordingLogger) record(level string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: fmt.Sprint(args...)})
}

func (l *RecordingLogger) Debug(args ...interface{}) { l.record(config.LogLevelDebug, args...) }
func (l *RecordingLogger) Info(args ...interface{})  { l.record(config.LogLevelInfo, args...) }
func (l *RecordingLogger) Warn(args ...interface{})  { l.record(config.LogLevelWarning, args...) }
func (l *RecordingLogger) Error(args ...interface{}) { l.record(config.LogLevelError, args...) }
func (l *RecordingLogger) Fatal(args ...interface{}) { l.record(config.LogLevelCritical, args...) }
func (l *RecordingLogger) Panic(args ...interface{}) { l.record(config.LogLevelCritical, args...) }

// Errors returns the messages logged at error level
func (l *RecordingLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var messages []string
	for _, e := range l.entries {
		if e.Level == config.LogLevelError {
			messages = append(messages, e.Message)
		}
	}
	return messages
}
