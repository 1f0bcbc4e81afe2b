package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/slidecast-io/slidecast/internal/logger"
	"github.com/slidecast-io/slidecast/pkg/executor"
)

// Extractor pulls plain text out of a source document.
type Extractor interface {
	Text(ctx context.Context, documentPath string) (string, error)
}

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Extractor backed by the pdftotext binary.
func New(exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		executor: exec,
		logger:   log,
	}
}

// Text extracts all text from the PDF at documentPath. A document that
// cannot be opened or yields no text is an input error that aborts the
// run before any generation call is made.
func (e *implExtractor) Text(ctx context.Context, documentPath string) (string, error) {
	if _, err := os.Stat(documentPath); err != nil {
		return "", fmt.Errorf("document unreadable: %w", err)
	}

	e.logger.Info(ctx, "Extracting text from document: %s", documentPath)

	// "-" writes the extracted text to stdout
	out, err := e.executor.Execute(ctx, "pdftotext", "-layout", documentPath, "-")
	if err != nil {
		return "", fmt.Errorf("document unreadable: %w", err)
	}

	text := strings.TrimSpace(out)
	if text == "" {
		return "", fmt.Errorf("document unreadable: no extractable text in %s", documentPath)
	}

	e.logger.Debug(ctx, "Extracted %d characters", len(text))
	return text, nil
}
