package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/slidecast-io/slidecast/internal/slides"
	"github.com/slidecast-io/slidecast/internal/tracker"
)

// synthesizeAll generates one audio clip per slide. Slides are
// independent of each other, so synthesis fans out bounded by the
// configured concurrency limit; the first failure cancels the remaining
// slides and aborts the run, since omitting one clip would desynchronize
// slide numbering. Audio files keep the slide index in their name.
func (p *implProcessor) synthesizeAll(ctx context.Context, recs []slides.Record, runDir string, tr *tracker.Tracker) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	audios := make([]string, len(recs))
	errs := make([]error, len(recs))
	var wg sync.WaitGroup

	p.logger.Info(ctx, "Synthesizing narration for %d slides (max concurrent: %d)",
		len(recs), p.cfg.Performance.MaxConcurrent)

	for i := range recs {
		wg.Add(1)
		go func(i int, rec slides.Record) {
			defer wg.Done()

			if err := sem.acquire(ctx); err != nil {
				errs[i] = err
				return
			}
			defer sem.release()

			outPath := filepath.Join(runDir, fmt.Sprintf("audio_%d.mp3", i+1))
			path, err := p.synthesizer.Synthesize(ctx, rec.Script, outPath)
			if err != nil {
				errs[i] = fmt.Errorf("slide %d (%s): %w", i+1, rec.Title, err)
				cancel()
				return
			}
			tr.Track(path)
			audios[i] = path
		}(i, recs[i])
	}
	wg.Wait()

	// Prefer the root failure over cancellations it caused
	var firstErr error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if firstErr == nil || errors.Is(firstErr, context.Canceled) {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, fmt.Errorf("synthesize narration: %w", firstErr)
	}

	return audios, nil
}
