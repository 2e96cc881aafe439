package parser

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
	"github.com/dilluhn/npo-rss-feed/internal/ports"
	"github.com/dilluhn/npo-rss-feed/internal/scanner"
)

// Source implements ports.Extractor by running matcher strategies over parsed
// markup and normalizing the winning batch.
type Source struct {
	chain    *scanner.Chain
	base     *url.URL
	maxItems int
	logger   *slog.Logger
}

var _ ports.Extractor = (*Source)(nil)

// NewSource wires the matcher chain with the site origin relative links are
// resolved against. maxItems caps the batch; zero means unlimited.
func NewSource(chain *scanner.Chain, origin string, maxItems int, logger *slog.Logger) (*Source, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %s: %w", origin, err)
	}

	return &Source{
		chain:    chain,
		base:     base,
		maxItems: maxItems,
		logger:   logger,
	}, nil
}

// Extract parses the markup and produces a normalized Program batch. It never
// fails: unrecognized or malformed markup degrades to the placeholder batch.
func (s *Source) Extract(markup string, now time.Time) ([]domain.Program, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		s.warn("markup did not parse", "error", err)
		return PlaceholderBatch(now), true
	}

	programs, matcher := s.chain.Run(doc, s.base)
	programs = s.normalize(programs, now)

	if len(programs) == 0 {
		s.warn("no programs extracted", "condition", domain.ErrExtractionDegraded.Error())
		return PlaceholderBatch(now), true
	}

	s.debug("extraction done", "matcher", matcher, "count", len(programs))
	return programs, false
}

// normalize trims titles, drops untitled entries, stamps missing publish
// times, and deduplicates by URL keeping first-seen order. Source order is
// relevance order, so the batch is never re-sorted.
func (s *Source) normalize(programs []domain.Program, now time.Time) []domain.Program {
	out := make([]domain.Program, 0, len(programs))
	seen := map[string]struct{}{}

	for _, p := range programs {
		p.Title = strings.TrimSpace(p.Title)
		if p.Title == "" {
			continue
		}

		if _, ok := seen[p.URL]; ok {
			continue
		}
		seen[p.URL] = struct{}{}

		if p.PublishedAt.IsZero() {
			p.PublishedAt = now
		}

		out = append(out, p)
		if s.maxItems > 0 && len(out) >= s.maxItems {
			break
		}
	}

	return out
}

func (s *Source) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Source) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
