package assembler

import (
	"github.com/slidecast-io/slidecast/internal/logger"
	"github.com/slidecast-io/slidecast/internal/tracker"
	"github.com/slidecast-io/slidecast/pkg/executor"
)

type implAssembler struct {
	frameRate int
	tempDir   string
	executor  executor.Executor
	tracker   *tracker.Tracker
	logger    logger.Logger
}

// New creates an Assembler encoding at the given uniform frame rate.
// Per-segment work files are created under tempDir and registered with
// the tracker; they are swept on finalize after a successful run and
// left in place for diagnosis when a run fails.
func New(frameRate int, tempDir string, exec executor.Executor, tr *tracker.Tracker, log logger.Logger) Assembler {
	return &implAssembler{
		frameRate: frameRate,
		tempDir:   tempDir,
		executor:  exec,
		tracker:   tr,
		logger:    log,
	}
}
