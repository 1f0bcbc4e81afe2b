package textgen

import "context"

// Service is the single text-generation collaborator for the pipeline:
// each method is one request/response call with no retained state.
type Service interface {
	// Summarize condenses extracted document text to keep later prompts small.
	Summarize(ctx context.Context, text string) (string, error)
	// GenerateSlides produces slide content following the
	// Slide N: / Title: / - / Script: convention consumed by the parser.
	GenerateSlides(ctx context.Context, summary string, maxSlides int) (string, error)
	// GenerateNarration writes a short presentation script for one slide.
	GenerateNarration(ctx context.Context, title string, bullets []string, docContext string) (string, error)
}
