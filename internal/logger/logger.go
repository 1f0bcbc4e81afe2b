package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the leveled logger used across the pipeline. The context is
// accepted so call sites stay stable if request-scoped fields are added.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type implLogger struct {
	logger *log.Logger
	level  int
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// New creates a new Logger instance writing to stdout
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a Logger writing to the given writer (used in tests)
func NewWithWriter(level string, w io.Writer) Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = levels["info"] // default to info
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  lvl,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	target, ok := levels[level]
	if !ok {
		return true
	}
	return target >= l.level
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.Printf("[INFO] "+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.Printf("[WARN] "+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.Printf("[ERROR] "+msg, args...)
	}
}
