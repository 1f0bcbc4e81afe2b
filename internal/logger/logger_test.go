package logger

import (
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"warn doesn't log at error level", "error", "warn", false},
		{"error always logs", "debug", "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	ctx := context.Background()
	var buf strings.Builder
	log := NewWithWriter("info", &buf)

	log.Debug(ctx, "hidden")
	log.Info(ctx, "formatted message: %s %d", "test", 123)
	log.Error(ctx, "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "[INFO] formatted message: test 123") {
		t.Errorf("missing formatted info message in %q", out)
	}
	if !strings.Contains(out, "[ERROR] boom") {
		t.Errorf("missing error message in %q", out)
	}
}
