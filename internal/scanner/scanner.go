package scanner

import (
	"log/slog"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
)

// Matcher captures a single extraction strategy for one structural signature
// of the listing page. Candidate programs carry resolved absolute URLs but are
// otherwise raw; batch-level rules (dedup, cap, fallback) live in the source.
type Matcher interface {
	Name() string
	Match(doc *goquery.Document, base *url.URL) []domain.Program
}

// Chain tries matchers in priority order; the markup is not guaranteed stable,
// so the first matcher yielding at least one program wins.
type Chain struct {
	matchers []Matcher
	logger   *slog.Logger
}

// NewChain builds a chain from matchers in descending priority.
func NewChain(logger *slog.Logger, matchers ...Matcher) *Chain {
	return &Chain{matchers: matchers, logger: logger}
}

// Append registers an extra matcher at the lowest priority.
func (c *Chain) Append(m Matcher) {
	c.matchers = append(c.matchers, m)
}

// Run executes the chain and returns the winning batch together with the name
// of the matcher that produced it. An empty batch and name mean no strategy
// recognized the markup.
func (c *Chain) Run(doc *goquery.Document, base *url.URL) ([]domain.Program, string) {
	for _, m := range c.matchers {
		programs := m.Match(doc, base)
		if len(programs) > 0 {
			c.debug("matcher won", "matcher", m.Name(), "count", len(programs))
			return programs, m.Name()
		}
		c.debug("matcher produced nothing", "matcher", m.Name())
	}
	return nil, ""
}

func (c *Chain) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
