package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/paper2podcast/internal/config"
	"github.com/nguyentantai21042004/paper2podcast/internal/extractor"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
	"github.com/nguyentantai21042004/paper2podcast/internal/processor"
	"github.com/nguyentantai21042004/paper2podcast/internal/source"
	"github.com/nguyentantai21042004/paper2podcast/internal/speech"
	"github.com/nguyentantai21042004/paper2podcast/internal/summarizer"
	"github.com/nguyentantai21042004/paper2podcast/internal/watcher"
	"github.com/nguyentantai21042004/paper2podcast/pkg/executor"
)

// App holds the wired pipeline for one run.
type App struct {
	cfg       *config.Config
	logger    logger.Logger
	resolver  source.Resolver
	processor processor.Processor
	// build wires the processor on first use, after the input was resolved.
	build func(ctx context.Context) (processor.Processor, error)
}

// NewApp loads configuration and prepares the resolver. The summarization
// client and output directories are only set up once there is work to do.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.CustomPrompt != "" {
		cfg.LLM.CustomPrompt = opts.CustomPrompt
	}
	if opts.Docx {
		cfg.Output.Docx = true
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Debug(ctx, "Configuration loaded: provider=%s model=%s output=%s", cfg.LLM.Provider, cfg.LLM.Model, cfg.Paths.Output)

	app := newApp(cfg, log, source.New(cfg, log), nil)
	app.build = func(ctx context.Context) (processor.Processor, error) {
		return buildProcessor(ctx, cfg, log)
	}
	return app, nil
}

func newApp(cfg *config.Config, log logger.Logger, resolver source.Resolver, proc processor.Processor) *App {
	return &App{cfg: cfg, logger: log, resolver: resolver, processor: proc}
}

func buildProcessor(ctx context.Context, cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	client, err := summarizer.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", cfg.LLM.Provider, err)
	}

	exec := executor.New()
	return processor.New(
		cfg,
		extractor.New(cfg.Extract, exec, log),
		summarizer.New(cfg.LLM, client, log),
		speech.New(cfg.Speech, exec, log),
		log,
	), nil
}

func (a *App) pipeline(ctx context.Context) (processor.Processor, error) {
	if a.processor == nil {
		proc, err := a.build(ctx)
		if err != nil {
			return nil, err
		}
		a.processor = proc
	}
	return a.processor, nil
}

// RunLocal processes a PDF file or every PDF in a directory. It returns the
// process exit code.
func (a *App) RunLocal(ctx context.Context, opts Options) int {
	ref := source.Classify(opts.Input)
	switch {
	case ref.Kind == source.KindRemote:
		// reported like any other input that is neither a file nor a directory
		a.logger.Error(ctx, "%v (use paper2podcast-url for URLs)", &source.InvalidInputError{Input: opts.Input})
		return 0
	case opts.Watch && ref.Kind != source.KindDirectory:
		a.logger.Error(ctx, "--watch requires a directory, got %s", opts.Input)
		return 1
	}

	docs, err := a.resolver.Resolve(ctx, opts.Input)
	if err != nil {
		var invalid *source.InvalidInputError
		if errors.As(err, &invalid) {
			// reported, nothing to do
			a.logger.Error(ctx, "%v", err)
			return 0
		}
		a.logger.Error(ctx, "Failed to resolve %s: %v", opts.Input, err)
		return 1
	}

	if len(docs) == 0 && !opts.Watch {
		a.logger.Info(ctx, "No PDF files to process in %s", opts.Input)
		return 0
	}

	proc, err := a.pipeline(ctx)
	if err != nil {
		a.logger.Error(ctx, "%v", err)
		return 1
	}
	code := a.run(ctx, proc, docs)

	if opts.Watch {
		if err := a.watch(ctx, proc, opts.Input); err != nil {
			a.logger.Error(ctx, "Watcher error: %v", err)
			return 1
		}
	}
	return code
}

// RunRemote processes a supported URL. Any other input is an error.
func (a *App) RunRemote(ctx context.Context, opts Options) int {
	docs, err := a.resolver.ResolveRemote(ctx, opts.Input)
	if err != nil {
		a.logger.Error(ctx, "%v", err)
		return 1
	}

	proc, err := a.pipeline(ctx)
	if err != nil {
		a.logger.Error(ctx, "%v", err)
		return 1
	}
	return a.run(ctx, proc, docs)
}

func (a *App) run(ctx context.Context, proc processor.Processor, docs []source.Document) int {
	results := proc.ProcessAll(ctx, docs)
	if processor.Failed(results) > 0 {
		return 1
	}
	return 0
}

func (a *App) watch(ctx context.Context, proc processor.Processor, dir string) error {
	w, err := watcher.New(dir, func(ctx context.Context, path string) error {
		return proc.Process(ctx, source.Local(path)).Err
	}, a.logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	a.logger.Info(ctx, "Watching %s for new papers. Press Ctrl+C to stop", dir)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// ensureDirectories creates the output and download directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Output,
		cfg.Remote.DownloadDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
