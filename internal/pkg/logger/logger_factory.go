package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
)

var (
	mu          sync.Mutex
	initialized bool
	instance    Logger
	initErr     error
)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process-wide logger from settings. Only the first call
// has an effect; later calls return its outcome and ignore their settings.
func InitLogger(settings *config.LoggerSettings) error {
	mu.Lock()
	defer mu.Unlock()

	if !initialized {
		instance, initErr = build(settings)
		initialized = true
	}
	return initErr
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return instance, nil
}

func build(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, fmt.Errorf("logger settings are nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(settings.LogLevel), nil
	case config.LogTypeFile:
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
}

// parseLevel maps a configured level to slog; unknown levels log at info
func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

func formatArgs(args ...interface{}) string {
	return fmt.Sprint(args...)
}
