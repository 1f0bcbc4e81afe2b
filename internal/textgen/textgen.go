package textgen

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const summarizePrompt = `You are an assistant that summarizes text efficiently.
Provide a concise summary of the following text:

%s`

const slidesPrompt = `You are an assistant that creates concise presentation slides.
Create up to %d slides from the summary below. Keep it concise.

Format each slide exactly like this, one block per slide:

Slide 1: Slide Title
- first bullet point
- second bullet point

Do not add any other markers or commentary.

Summary:
%s`

const narrationPrompt = `You are an assistant that writes concise presentation scripts.
Write a brief and engaging script for a presentation slide based on the following:

Slide Title: %s
Bullet Points:
%s

Use the following summary for context:
%s`

func (s *implService) Summarize(ctx context.Context, text string) (string, error) {
	reply, err := s.callGemini(ctx, fmt.Sprintf(summarizePrompt, text))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func (s *implService) GenerateSlides(ctx context.Context, summary string, maxSlides int) (string, error) {
	reply, err := s.callGemini(ctx, fmt.Sprintf(slidesPrompt, maxSlides, summary))
	if err != nil {
		return "", fmt.Errorf("generate slides: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func (s *implService) GenerateNarration(ctx context.Context, title string, bullets []string, docContext string) (string, error) {
	var points strings.Builder
	for _, b := range bullets {
		fmt.Fprintf(&points, "- %s\n", b)
	}

	reply, err := s.callGemini(ctx, fmt.Sprintf(narrationPrompt, title, points.String(), docContext))
	if err != nil {
		return "", fmt.Errorf("generate narration: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// callGemini sends one prompt to Gemini and returns the reply text.
// Rotates API keys on 429 / quota errors.
func (s *implService) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		keyIdx, key := s.nextKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implService) nextKey() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

func (s *implService) rotateKey() {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	s.mu.Unlock()
}
