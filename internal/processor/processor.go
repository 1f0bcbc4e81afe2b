package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/slidecast-io/slidecast/internal/assembler"
	"github.com/slidecast-io/slidecast/internal/deck"
	"github.com/slidecast-io/slidecast/internal/slides"
	"github.com/slidecast-io/slidecast/internal/tracker"
)

// Process orchestrates the entire document-to-video pipeline for one
// document. The stages are strictly sequential: slide count sizes the
// rendering and synthesis fan-out, and assembly needs every duration, so
// no stage starts before the previous one has fully completed. On
// success exactly one video is published and all intermediates are
// swept; on failure the intermediates stay on disk for diagnosis.
func (p *implProcessor) Process(ctx context.Context, documentPath string) error {
	startTime := time.Now()
	docName := strings.TrimSuffix(filepath.Base(documentPath), filepath.Ext(documentPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting presentation build: %s", documentPath)
	p.logger.Info(ctx, "========================================")

	runDir := filepath.Join(p.cfg.Paths.Temp, docName)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	tr := tracker.New(p.logger)
	tr.Track(runDir)

	// Step 1: extract text
	text, err := p.extractor.Text(ctx, documentPath)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	// Step 2: summarize to keep later prompts small
	p.logger.Info(ctx, "Summarizing document text...")
	summary, err := p.textgen.Summarize(ctx, text)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 3: generate and parse slide content
	p.logger.Info(ctx, "Generating slide content...")
	raw, err := p.textgen.GenerateSlides(ctx, summary, p.cfg.Slides.MaxSlides)
	if err != nil {
		return fmt.Errorf("generate slides: %w", err)
	}
	recs := slides.Parse(raw)
	if len(recs) == 0 {
		return fmt.Errorf("generated content contained no recognizable slide sections")
	}
	p.logger.Info(ctx, "Parsed %d slides", len(recs))

	// Step 4: resolve narration scripts
	recs, err = p.resolver.Resolve(ctx, recs, summary)
	if err != nil {
		return fmt.Errorf("resolve narration: %w", err)
	}

	// Step 5: optional title and closing slides, added before rendering
	// so the visual and audio sequences stay aligned end to end
	if p.cfg.Slides.IntroOutro {
		recs = withIntroOutro(recs, docName)
	}

	// Step 6: build the deck document
	deckPath := filepath.Join(runDir, "presentation.docx")
	if err := deck.Build(recs, deckPath); err != nil {
		return fmt.Errorf("build deck: %w", err)
	}
	tr.Track(deckPath)

	// Step 7: render deck pages to slide images
	slidesDir := filepath.Join(runDir, "slides")
	tr.Track(slidesDir)
	images, err := p.renderer.Render(ctx, deckPath, slidesDir)
	if err != nil {
		return fmt.Errorf("render slides: %w", err)
	}
	for _, img := range images {
		tr.Track(img)
	}
	if len(images) != len(recs) {
		return fmt.Errorf("rendered %d slide images for %d slides", len(images), len(recs))
	}

	// Step 8: synthesize per-slide narration audio
	audios, err := p.synthesizeAll(ctx, recs, runDir, tr)
	if err != nil {
		return err
	}

	// Step 9: assemble the video
	outDir := filepath.Join(p.cfg.Paths.Output, docName)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outputPath := filepath.Join(outDir, p.cfg.Video.OutputName)

	asm := assembler.New(p.cfg.Video.FrameRate, runDir, p.executor, tr, p.logger)
	finalPath, err := asm.Assemble(ctx, images, audios, outputPath)
	if err != nil {
		return fmt.Errorf("assemble video: %w", err)
	}

	// Step 10: confirm the output and sweep intermediates
	info, err := os.Stat(finalPath)
	if err != nil {
		return fmt.Errorf("final video missing: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("final video is empty: %s", finalPath)
	}
	if failures := tr.Finalize(ctx, map[string]struct{}{finalPath: {}}); len(failures) > 0 {
		p.logger.Warn(ctx, "%d intermediates could not be removed", len(failures))
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Presentation build completed!")
	p.logger.Info(ctx, "Output video: %s", finalPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func withIntroOutro(recs []slides.Record, docName string) []slides.Record {
	title := strings.ReplaceAll(docName, "_", " ")
	out := make([]slides.Record, 0, len(recs)+2)
	out = append(out, slides.Record{
		Title:  title,
		Script: fmt.Sprintf("Welcome. This presentation covers %s.", title),
	})
	out = append(out, recs...)
	out = append(out, slides.Record{
		Title:  "Thank You",
		Script: "That concludes this presentation. Thank you for watching.",
	})
	return out
}
