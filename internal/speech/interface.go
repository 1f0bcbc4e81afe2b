package speech

import "context"

// Synthesizer converts a narration script into a playable audio file.
type Synthesizer interface {
	// Synthesize writes synthesized speech for script to outPath and
	// returns the path. An empty script is a synthesis error.
	Synthesize(ctx context.Context, script, outPath string) (string, error)
}
