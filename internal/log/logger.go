package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

var levelValues = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// ParseLevel maps a config string to a Level, case insensitively.
// Unrecognized values fall back to LevelWarn.
func ParseLevel(s string) Level {
	if level, ok := levelValues[strings.ToLower(s)]; ok {
		return level
	}
	return LevelWarn
}

// Logger writes leveled lines to a file. Safe for concurrent use, and
// every method tolerates a nil receiver so callers can hold one
// unconditionally.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
	enabled  bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	initOnce        sync.Once
)

// Init wires the global logger to logPath. Only the first call has any
// effect.
func Init(logPath string, minLevel Level) error {
	var err error
	initOnce.Do(func() {
		l, e := New(logPath, minLevel)
		if e != nil {
			err = e
			return
		}
		defaultLoggerMu.Lock()
		defaultLogger = l
		defaultLoggerMu.Unlock()
	})
	return err
}

// New creates a logger appending to the file at logPath, creating the
// directory as needed. The file is kept at 0600.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if err := ensurePrivate(logPath); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{file: file, minLevel: minLevel, enabled: true}, nil
}

// ensurePrivate tightens the mode of an existing log file. A file left
// behind by an older build may be world-readable.
func ensurePrivate(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Mode().Perm() == 0600 {
		return nil
	}
	if err := os.Chmod(logPath, 0600); err != nil {
		return fmt.Errorf("chmod existing log file: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || !l.enabled || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	_, err := fmt.Fprintf(l.file, "[%s] %s: %s\n", stamp, level, message)
	if err != nil && level >= LevelError {
		// The file is gone; surface only what would otherwise be lost.
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Writer returns an io.Writer that logs everything written to it at the
// given level.
func (l *Logger) Writer(level Level) io.Writer {
	return &levelWriter{logger: l, level: level}
}

type levelWriter struct {
	logger *Logger
	level  Level
}

func (w *levelWriter) Write(p []byte) (int, error) {
	w.logger.log(w.level, "%s", string(p))
	return len(p), nil
}

// current returns the global logger installed by Init. It is nil before
// Init, which the nil-safe methods absorb.
func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Package-level variants that write through the global logger. Before
// Init they silently drop everything.

func Debug(format string, args ...any) { current().Debug(format, args...) }
func Info(format string, args ...any)  { current().Info(format, args...) }
func Warn(format string, args ...any)  { current().Warn(format, args...) }
func Error(format string, args ...any) { current().Error(format, args...) }

// Close closes the global logger.
func Close() error {
	return current().Close()
}

// GetLogger returns the global logger, nil when Init was never called.
func GetLogger() *Logger {
	return current()
}

// NopLogger discards all messages. Useful for tests and disabled runs.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }
