// Package logger provides file-based logging for the TUI. Writing to stdout
// or stderr would corrupt the terminal display, so everything goes to a log
// file under /tmp.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LevelDebug is for verbose debugging information
	LevelDebug LogLevel = iota
	// LevelInfo is for general operational information
	LevelInfo
	// LevelWarn is for warning conditions
	LevelWarn
	// LevelError is for error conditions
	LevelError
)

func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	slogLogger   *slog.Logger
	levelVar     = new(slog.LevelVar)
	logFile      *os.File
	mu           sync.Mutex
	once         sync.Once
	initDone     bool
	currentLevel LogLevel = LevelInfo
)

// DefaultLogPath is the default log file for the main process
const DefaultLogPath = "/tmp/chatdeck-debug.log"

// SetLevel sets the minimum log level to output
func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	levelVar.Set(level.toSlogLevel())
}

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// Init initializes the logger with a custom path. If not called, the default
// path is used on the first log call. Returns an error if the log file
// cannot be opened.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	levelVar.Set(currentLevel.toSlogLevel())
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if !initDone {
		once.Do(func() {
			f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
				return
			}
			logFile = f
			levelVar.Set(currentLevel.toSlogLevel())
			slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
			initDone = true

			slogLogger.Info("Logger initialized", "path", DefaultLogPath)
		})
	}
}

// logWithLevel logs a message at the given level using printf-style formatting
func logWithLevel(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()

	if slogLogger == nil {
		return
	}

	// Check if enabled before formatting
	if !slogLogger.Enabled(context.Background(), level) {
		return
	}

	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message to the log file (only if level is LevelDebug)
func Debug(format string, args ...interface{}) {
	logWithLevel(slog.LevelDebug, format, args...)
}

// Info writes an info message to the log file
func Info(format string, args ...interface{}) {
	logWithLevel(slog.LevelInfo, format, args...)
}

// Warn writes a warning message to the log file
func Warn(format string, args ...interface{}) {
	logWithLevel(slog.LevelWarn, format, args...)
}

// Error writes an error message to the log file
func Error(format string, args ...interface{}) {
	logWithLevel(slog.LevelError, format, args...)
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset resets the logger state, allowing reinitialization.
// This is primarily for testing purposes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	once = sync.Once{}
	slogLogger = nil
	currentLevel = LevelInfo
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes all chatdeck log files from /tmp and returns how many
// were deleted.
func ClearLogs() (int, error) {
	logs, err := filepath.Glob("/tmp/chatdeck-*.log")
	if err != nil {
		return 0, err
	}

	count := 0
	for _, path := range logs {
		if err := os.Remove(path); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}

// WithComponent returns a slog.Logger with the component attribute
// pre-attached for structured logging.
//
// Example:
//
//	log := logger.WithComponent("layout")
//	log.Debug("panel resized", "panel", id, "width", w)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()

	if slogLogger == nil {
		return slog.Default()
	}
	return slogLogger.With(slog.String("component", component))
}
