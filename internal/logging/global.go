package logging

import (
	"context"
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
	noopLogger   = NewNoop()
)

// Global returns the process-wide logger, or a no-op logger when none has
// been installed.
func Global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// SetGlobal installs l as the process-wide logger. Passing nil restores the no-op logger.
func SetGlobal(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// InitGlobal creates a file logger from config, tags it with the session ID
// carried by ctx and installs it as the global logger.
func InitGlobal(ctx context.Context, config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	SetGlobal(l.WithContext(ctx))
	return nil
}

// CloseGlobal closes the global logger's file and restores the no-op logger.
func CloseGlobal() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		return nil
	}
	err := globalLogger.Close()
	globalLogger = nil
	return err
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) {
	Global().Debug(msg, args...)
}

// Info logs an info message using the global logger.
func Info(msg string, args ...any) {
	Global().Info(msg, args...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) {
	Global().Warn(msg, args...)
}

// Error logs an error message using the global logger.
func Error(msg string, args ...any) {
	Global().Error(msg, args...)
}

// With returns the global logger with the given attributes added.
func With(args ...any) *Logger {
	return Global().With(args...)
}
