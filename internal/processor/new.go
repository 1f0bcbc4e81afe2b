package processor

import (
	"github.com/slidecast-io/slidecast/internal/config"
	"github.com/slidecast-io/slidecast/internal/deck"
	"github.com/slidecast-io/slidecast/internal/extract"
	"github.com/slidecast-io/slidecast/internal/logger"
	"github.com/slidecast-io/slidecast/internal/narration"
	"github.com/slidecast-io/slidecast/internal/speech"
	"github.com/slidecast-io/slidecast/internal/textgen"
	"github.com/slidecast-io/slidecast/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	extractor   extract.Extractor
	textgen     textgen.Service
	resolver    narration.Resolver
	renderer    deck.Renderer
	synthesizer speech.Synthesizer
	executor    executor.Executor
	logger      logger.Logger
}

// Deps bundles the pipeline collaborators the processor orchestrates.
// The artifact tracker and the assembler are created per run: documents
// processed concurrently must not sweep each other's intermediates.
type Deps struct {
	Extractor   extract.Extractor
	TextGen     textgen.Service
	Resolver    narration.Resolver
	Renderer    deck.Renderer
	Synthesizer speech.Synthesizer
	Executor    executor.Executor
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		extractor:   deps.Extractor,
		textgen:     deps.TextGen,
		resolver:    deps.Resolver,
		renderer:    deps.Renderer,
		synthesizer: deps.Synthesizer,
		executor:    deps.Executor,
		logger:      log,
	}
}
