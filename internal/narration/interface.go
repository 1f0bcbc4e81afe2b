package narration

import (
	"context"

	"github.com/slidecast-io/slidecast/internal/slides"
)

// Resolver ensures every slide record carries a narration script.
type Resolver interface {
	Resolve(ctx context.Context, recs []slides.Record, docContext string) ([]slides.Record, error)
}

// Generator is the text-generation call the resolver delegates to for
// slides that arrived without an embedded script.
type Generator interface {
	GenerateNarration(ctx context.Context, title string, bullets []string, docContext string) (string, error)
}
