package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/slidecast-io/slidecast/internal/logger"
	"github.com/slidecast-io/slidecast/pkg/executor"
)

// Renderer converts a deck document into one still image per page.
type Renderer interface {
	Render(ctx context.Context, deckPath, outDir string) ([]string, error)
}

type implRenderer struct {
	executor executor.Executor
	logger   logger.Logger
}

// NewRenderer creates a Renderer backed by soffice and pdftoppm.
func NewRenderer(exec executor.Executor, log logger.Logger) Renderer {
	return &implRenderer{
		executor: exec,
		logger:   log,
	}
}

// Render converts the deck to a PDF with soffice, rasterizes each page to
// a PNG with pdftoppm, and returns the image paths in page order. The
// intermediate PDF is removed before returning.
func (r *implRenderer) Render(ctx context.Context, deckPath, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create render dir: %w", err)
	}

	r.logger.Info(ctx, "Rendering deck to images: %s", deckPath)

	if _, err := r.executor.Execute(ctx, "soffice",
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outDir,
		deckPath,
	); err != nil {
		return nil, fmt.Errorf("convert deck to pdf: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath))
	pdfPath := filepath.Join(outDir, base+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("rendered pdf missing: %w", err)
	}

	// pdftoppm zero-pads page numbers, so a string sort keeps page order
	prefix := filepath.Join(outDir, "slide")
	if _, err := r.executor.Execute(ctx, "pdftoppm", "-png", "-r", "150", pdfPath, prefix); err != nil {
		return nil, fmt.Errorf("rasterize pdf: %w", err)
	}

	images, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("list rendered images: %w", err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("no images rendered from %s", deckPath)
	}
	sort.Strings(images)

	if err := os.Remove(pdfPath); err != nil {
		r.logger.Warn(ctx, "Failed to remove intermediate pdf %s: %v", pdfPath, err)
	}

	r.logger.Info(ctx, "Rendered %d slide images", len(images))
	return images, nil
}
