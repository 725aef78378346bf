// Package logger provides a leveled logger with colored level prefixes.
// Levels are off, normal (info/warn/error) and verbose (adds debug).
// The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

var (
	debugPrefix = color.New(color.FgBlue).SprintFunc()
	infoPrefix  = color.New(color.FgCyan).SprintFunc()
	warnPrefix  = color.New(color.FgYellow).SprintFunc()
	errorPrefix = color.New(color.FgRed).SprintFunc()
)

// Logger is a leveled logger.
type Logger struct {
	mu    sync.RWMutex
	level Level
	out   *log.Logger
}

// New creates a logger with the given level writing to out.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level: level,
		out:   log.New(out, "", log.Ltime),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(LevelOff, io.Discard)
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Debug logs at debug level (verbose only).
func (l *Logger) Debug(format string, args ...any) {
	l.write(LevelVerbose, debugPrefix("[DBG]"), format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.write(LevelNormal, infoPrefix("[INF]"), format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.write(LevelNormal, warnPrefix("[WRN]"), format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.write(LevelNormal, errorPrefix("[ERR]"), format, args...)
}

func (l *Logger) write(min Level, prefix, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level < min {
		return
	}
	_ = l.out.Output(3, prefix+" "+fmt.Sprintf(format, args...))
}
