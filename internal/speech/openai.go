package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/slidecast-io/slidecast/internal/logger"
)

type implSynthesizer struct {
	client *openai.Client
	model  openai.SpeechModel
	voice  openai.SpeechVoice
	logger logger.Logger
}

// New creates a Synthesizer backed by the OpenAI speech endpoint.
// The voice must be one of the supported synthetic voices
// (alloy, echo, fable, onyx, nova, shimmer).
func New(apiKey, model, voice string, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		client: openai.NewClient(apiKey),
		model:  openai.SpeechModel(model),
		voice:  openai.SpeechVoice(voice),
		logger: log,
	}
}

func (s *implSynthesizer) Synthesize(ctx context.Context, script, outPath string) (string, error) {
	if strings.TrimSpace(script) == "" {
		return "", fmt.Errorf("synthesis failed: empty script")
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: s.model,
		Input: script,
		Voice: s.voice,
	})
	if err != nil {
		return "", fmt.Errorf("synthesis failed: %w", err)
	}
	defer resp.Close()

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}

	n, err := io.Copy(f, resp)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("write audio file %s: %w", outPath, err)
	}
	if n == 0 {
		return "", fmt.Errorf("synthesis failed: empty audio for %s", outPath)
	}

	s.logger.Debug(ctx, "Synthesized %d bytes of speech: %s", n, outPath)
	return outPath, nil
}
