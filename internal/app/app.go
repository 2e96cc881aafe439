package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/config"
	"github.com/dilluhn/npo-rss-feed/internal/domain"
	"github.com/dilluhn/npo-rss-feed/internal/infrastructure/feed"
	"github.com/dilluhn/npo-rss-feed/internal/infrastructure/fetch"
	"github.com/dilluhn/npo-rss-feed/internal/infrastructure/parser"
	"github.com/dilluhn/npo-rss-feed/internal/infrastructure/publish"
	"github.com/dilluhn/npo-rss-feed/internal/infrastructure/scheduler"
	"github.com/dilluhn/npo-rss-feed/internal/infrastructure/server"
	"github.com/dilluhn/npo-rss-feed/internal/logging"
	"github.com/dilluhn/npo-rss-feed/internal/scanner"
	"github.com/dilluhn/npo-rss-feed/internal/usecase"
)

// Application wires config to adapters and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	pipeline  *usecase.Pipeline
	publisher *publish.FilePublisher
	logger    *slog.Logger
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	chain := scanner.NewChain(
		baseLogger.With("component", "scanner"),
		parser.CardMatcher{},
		parser.TileMatcher{},
	)

	source, err := parser.NewSource(chain, cfg.Source.Origin, cfg.Source.MaxItems, baseLogger.With("component", "extractor"))
	if err != nil {
		return nil, fmt.Errorf("build extractor: %w", err)
	}

	fetcher := fetch.NewPageFetcher(nil, cfg.Source.FetchTimeout(), cfg.Source.UserAgent)
	publisher := publish.NewFilePublisher(cfg.Output.File, baseLogger.With("component", "publisher"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Fetcher:   fetcher,
		Extractor: source,
		Builder:   feed.NewBuilder(),
		Publisher: publisher,
		Feed: domain.FeedInfo{
			Title:       cfg.Feed.Title,
			Link:        cfg.Feed.Link,
			Description: cfg.Feed.Description,
			Language:    cfg.Feed.Language,
		},
		SourceURL: cfg.Source.URL,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:       cfg,
		pipeline:  pipeline,
		publisher: publisher,
		logger:    baseLogger,
	}, nil
}

// RunOnce performs a single cycle and writes the feed file.
func (a *Application) RunOnce(ctx context.Context) error {
	return a.pipeline.RunCycle(ctx, time.Now().UTC())
}

// Serve starts the refresh loop and the HTTP surface, blocking until the
// context is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	driver := scheduler.NewIntervalScheduler(a.cfg.Scheduler.RefreshInterval())
	loop := usecase.NewScheduler(driver, a.pipeline, a.logger.With("component", "scheduler"))

	if err := loop.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer func() {
		_ = loop.Stop(context.Background())
	}()

	srv := server.New(a.cfg.Server.Addr, a.cfg.Server.Path, a.publisher, a.logger.With("component", "server"))
	return srv.Run(ctx)
}
