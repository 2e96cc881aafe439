package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
	"github.com/dilluhn/npo-rss-feed/internal/ports"
)

// PipelineDeps wires all driven adapters into the refresh pipeline.
type PipelineDeps struct {
	Fetcher   ports.Fetcher
	Extractor ports.Extractor
	Builder   ports.FeedBuilder
	Publisher ports.Publisher
	Feed      domain.FeedInfo
	SourceURL string
	Logger    *slog.Logger
}

// Pipeline implements one fetch → extract → build → publish cycle.
type Pipeline struct {
	fetcher   ports.Fetcher
	extractor ports.Extractor
	builder   ports.FeedBuilder
	publisher ports.Publisher
	feed      domain.FeedInfo
	sourceURL string
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		fetcher:   deps.Fetcher,
		extractor: deps.Extractor,
		builder:   deps.Builder,
		publisher: deps.Publisher,
		feed:      deps.Feed,
		sourceURL: deps.SourceURL,
		logger:    deps.Logger,
	}
}

// RunCycle executes one full cycle. On fetch failure the previously published
// document stays in place; a degraded extraction still publishes the
// placeholder feed. Only a build failure aborts after a successful fetch.
func (p *Pipeline) RunCycle(ctx context.Context, now time.Time) error {
	markup, err := p.fetcher.Fetch(ctx, p.sourceURL)
	if err != nil {
		return fmt.Errorf("fetch listing: %w", err)
	}

	programs, degraded := p.extractor.Extract(markup, now)
	if degraded {
		p.warn("publishing placeholder feed", "condition", domain.ErrExtractionDegraded.Error())
	}

	data, err := p.builder.Build(p.feed, programs, now)
	if err != nil {
		return fmt.Errorf("build feed: %w", err)
	}

	if err := p.publisher.Publish(data); err != nil {
		return fmt.Errorf("publish feed: %w", err)
	}

	p.info("cycle done", "programs", len(programs), "degraded", degraded)
	return nil
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
