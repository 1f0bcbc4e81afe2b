package narration

import (
	"context"
	"fmt"
	"strings"

	"github.com/slidecast-io/slidecast/internal/logger"
	"github.com/slidecast-io/slidecast/internal/slides"
)

type implResolver struct {
	generator Generator
	logger    logger.Logger
}

// New creates a Resolver backed by the given narration generator.
func New(gen Generator, log logger.Logger) Resolver {
	return &implResolver{
		generator: gen,
		logger:    log,
	}
}

// Resolve fills in the narration script of every record that lacks one.
// Records with an embedded script are passed through untouched, so slide
// content generated with or without joint scripts converges on the same
// shape. A generation failure is fatal: an empty script would later
// produce a zero-length video segment.
func (r *implResolver) Resolve(ctx context.Context, recs []slides.Record, docContext string) ([]slides.Record, error) {
	resolved := make([]slides.Record, len(recs))
	copy(resolved, recs)

	for i := range resolved {
		if resolved[i].HasScript() {
			r.logger.Debug(ctx, "Slide %d already has a script, skipping generation", i+1)
			continue
		}

		script, err := r.generator.GenerateNarration(ctx, resolved[i].Title, resolved[i].Bullets, docContext)
		if err != nil {
			return nil, fmt.Errorf("narration for slide %d (%s): %w", i+1, resolved[i].Title, err)
		}
		script = strings.TrimSpace(script)
		if script == "" {
			return nil, fmt.Errorf("narration for slide %d (%s): generator returned empty script", i+1, resolved[i].Title)
		}
		resolved[i].Script = script
	}

	return resolved, nil
}
