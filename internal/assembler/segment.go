package assembler

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// segment is one planned unit of the output: a still image shown for
// exactly the duration of its paired audio.
type segment struct {
	visual   string
	audio    string
	duration float64 // seconds, taken from the audio asset
}

// plan validates the preconditions and probes every audio asset for its
// duration. Sequence lengths must match exactly: truncating or padding
// would silently desynchronize narration from slides. An empty input is
// rejected rather than producing an empty video.
func (a *implAssembler) plan(ctx context.Context, visuals, audios []string) ([]segment, error) {
	if len(visuals) != len(audios) {
		return nil, fmt.Errorf("segment count mismatch: %d visuals vs %d audios", len(visuals), len(audios))
	}
	if len(visuals) == 0 {
		return nil, fmt.Errorf("no segments to assemble")
	}

	segments := make([]segment, 0, len(visuals))
	for i := range visuals {
		if _, err := os.Stat(visuals[i]); err != nil {
			return nil, fmt.Errorf("segment %d: visual %s: %w", i+1, visuals[i], err)
		}
		if _, err := os.Stat(audios[i]); err != nil {
			return nil, fmt.Errorf("segment %d: audio %s: %w", i+1, audios[i], err)
		}

		d, err := a.probeDuration(ctx, audios[i])
		if err != nil {
			return nil, fmt.Errorf("segment %d: audio %s: %w", i+1, audios[i], err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("segment %d: audio %s: non-positive duration %f", i+1, audios[i], d)
		}

		segments = append(segments, segment{
			visual:   visuals[i],
			audio:    audios[i],
			duration: d,
		})
	}

	return segments, nil
}

// probeDuration reads the audio duration in seconds via ffprobe.
// The audio asset is the source of truth for segment timing.
func (a *implAssembler) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := a.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("probe duration: %w", err)
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	return d, nil
}

func totalDuration(segments []segment) float64 {
	var total float64
	for _, s := range segments {
		total += s.duration
	}
	return total
}
