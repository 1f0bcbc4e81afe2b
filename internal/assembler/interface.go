package assembler

import "context"

// Assembler turns index-aligned visual and audio sequences into a single
// video file. Each visual is shown for exactly the duration of its paired
// audio, in input order, at one uniform frame rate.
type Assembler interface {
	Assemble(ctx context.Context, visuals, audios []string, outPath string) (string, error)
}
