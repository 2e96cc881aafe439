package scanner

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
)

type fakeMatcher struct {
	name     string
	programs []domain.Program
}

func (f fakeMatcher) Name() string { return f.name }

func (f fakeMatcher) Match(doc *goquery.Document, base *url.URL) []domain.Program {
	return f.programs
}

func testDoc(t *testing.T) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html></html>"))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func TestChainFirstMatchWins(t *testing.T) {
	t.Parallel()

	chain := NewChain(nil,
		fakeMatcher{name: "primary", programs: []domain.Program{{Title: "A"}}},
		fakeMatcher{name: "secondary", programs: []domain.Program{{Title: "B"}}},
	)

	programs, winner := chain.Run(testDoc(t), nil)
	if winner != "primary" {
		t.Fatalf("expected primary matcher to win, got %q", winner)
	}
	if len(programs) != 1 || programs[0].Title != "A" {
		t.Fatalf("unexpected batch: %+v", programs)
	}
}

func TestChainFallsThroughEmptyMatchers(t *testing.T) {
	t.Parallel()

	chain := NewChain(nil,
		fakeMatcher{name: "primary"},
		fakeMatcher{name: "secondary", programs: []domain.Program{{Title: "B"}}},
	)

	programs, winner := chain.Run(testDoc(t), nil)
	if winner != "secondary" {
		t.Fatalf("expected fallthrough to secondary, got %q", winner)
	}
	if len(programs) != 1 || programs[0].Title != "B" {
		t.Fatalf("unexpected batch: %+v", programs)
	}
}

func TestChainExhausted(t *testing.T) {
	t.Parallel()

	chain := NewChain(nil, fakeMatcher{name: "primary"})
	chain.Append(fakeMatcher{name: "appended"})

	programs, winner := chain.Run(testDoc(t), nil)
	if winner != "" || programs != nil {
		t.Fatalf("expected empty result, got %q / %+v", winner, programs)
	}
}
