package textgen

import (
	"sync"

	"github.com/slidecast-io/slidecast/internal/logger"
)

type implService struct {
	apiKeys []string
	logger  logger.Logger
	model   string

	// guards currentKey: one Service is shared by all concurrent
	// document runs in watch mode
	mu         sync.Mutex
	currentKey int
}

// New creates a Service that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Service {
	return &implService{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
