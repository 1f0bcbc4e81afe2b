package speech

import (
	"context"
	"strings"
	"testing"

	"github.com/slidecast-io/slidecast/internal/logger"
)

func TestSynthesizeRejectsEmptyScript(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t"},
	}

	s := New("test-key", "tts-1", "alloy", logger.NewWithWriter("error", &strings.Builder{}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Synthesize(context.Background(), tt.script, t.TempDir()+"/out.mp3")
			if err == nil {
				t.Fatal("Synthesize() expected error for empty script")
			}
			if !strings.Contains(err.Error(), "empty script") {
				t.Errorf("error = %v, want empty script rejection", err)
			}
		})
	}
}
