package processor

import "context"

// Processor runs the full document-to-video pipeline for one document.
type Processor interface {
	Process(ctx context.Context, documentPath string) error
}
