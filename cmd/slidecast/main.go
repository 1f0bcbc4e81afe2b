package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/slidecast-io/slidecast/internal/config"
	"github.com/slidecast-io/slidecast/internal/deck"
	"github.com/slidecast-io/slidecast/internal/extract"
	"github.com/slidecast-io/slidecast/internal/logger"
	"github.com/slidecast-io/slidecast/internal/narration"
	"github.com/slidecast-io/slidecast/internal/processor"
	"github.com/slidecast-io/slidecast/internal/speech"
	"github.com/slidecast-io/slidecast/internal/textgen"
	"github.com/slidecast-io/slidecast/internal/watcher"
	"github.com/slidecast-io/slidecast/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	docPath := flag.String("f", "", "process a single document and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "slidecast: document to narrated slide video")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Gemini model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Voice: %s, frame rate: %d fps", cfg.OpenAI.Voice, cfg.Video.FrameRate)
	log.Info(ctx, "Max concurrent synthesis: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	gen := textgen.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	proc := processor.New(cfg, processor.Deps{
		Extractor:   extract.New(exec, log),
		TextGen:     gen,
		Resolver:    narration.New(gen, log),
		Renderer:    deck.NewRenderer(exec, log),
		Synthesizer: speech.New(cfg.OpenAI.APIKey, cfg.OpenAI.TTSModel, cfg.OpenAI.Voice, log),
		Executor:    exec,
	}, log)

	// One-shot mode: build a single document and exit
	if *docPath != "" {
		if err := proc.Process(ctx, *docPath); err != nil {
			log.Error(ctx, "Failed to process %s: %v", *docPath, err)
			os.Exit(1)
		}
		return
	}

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "slidecast is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "slidecast stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
