package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
)

type stubFetcher struct {
	body string
	err  error
}

func (s stubFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	return s.body, s.err
}

type stubExtractor struct {
	programs []domain.Program
	degraded bool
}

func (s stubExtractor) Extract(markup string, now time.Time) ([]domain.Program, bool) {
	return s.programs, s.degraded
}

type stubBuilder struct {
	data []byte
	err  error
}

func (s stubBuilder) Build(info domain.FeedInfo, programs []domain.Program, now time.Time) ([]byte, error) {
	return s.data, s.err
}

type recordingPublisher struct {
	published [][]byte
	latest    []byte
}

func (r *recordingPublisher) Publish(data []byte) error {
	r.published = append(r.published, data)
	r.latest = data
	return nil
}

func (r *recordingPublisher) Latest() ([]byte, bool) {
	if r.latest == nil {
		return nil, false
	}
	return r.latest, true
}

func newPipeline(fetcher stubFetcher, extractor stubExtractor, builder stubBuilder, publisher *recordingPublisher) *Pipeline {
	return NewPipeline(PipelineDeps{
		Fetcher:   fetcher,
		Extractor: extractor,
		Builder:   builder,
		Publisher: publisher,
		Feed:      domain.FeedInfo{Title: "test"},
		SourceURL: "https://npo.nl/",
	})
}

func TestRunCycleFetchFailureRetainsPrevious(t *testing.T) {
	t.Parallel()

	previous := []byte("<rss>oud</rss>")
	publisher := &recordingPublisher{latest: previous}

	pipeline := newPipeline(
		stubFetcher{err: &domain.FetchError{URL: "https://npo.nl/", StatusCode: 503}},
		stubExtractor{},
		stubBuilder{data: []byte("<rss>nieuw</rss>")},
		publisher,
	)

	err := pipeline.RunCycle(context.Background(), time.Now())
	if err == nil {
		t.Fatalf("expected cycle error on fetch failure")
	}

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}

	if len(publisher.published) != 0 {
		t.Fatalf("fetch failure must not publish")
	}
	latest, ok := publisher.Latest()
	if !ok || !bytes.Equal(latest, previous) {
		t.Fatalf("previous document must remain in place")
	}
}

func TestRunCycleDegradedStillPublishes(t *testing.T) {
	t.Parallel()

	publisher := &recordingPublisher{}
	pipeline := newPipeline(
		stubFetcher{body: "<html></html>"},
		stubExtractor{programs: []domain.Program{{Title: "Voorbeeld", URL: "https://npo.nl/p/v"}}, degraded: true},
		stubBuilder{data: []byte("<rss>voorbeeld</rss>")},
		publisher,
	)

	if err := pipeline.RunCycle(context.Background(), time.Now()); err != nil {
		t.Fatalf("degraded extraction must not fail the cycle: %v", err)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected one publish, got %d", len(publisher.published))
	}
}

func TestRunCycleBuildFailureDoesNotPublish(t *testing.T) {
	t.Parallel()

	publisher := &recordingPublisher{}
	pipeline := newPipeline(
		stubFetcher{body: "<html></html>"},
		stubExtractor{programs: []domain.Program{{Title: "X", URL: "https://npo.nl/p/x"}}},
		stubBuilder{err: &domain.BuildError{Err: errors.New("boom")}},
		publisher,
	)

	err := pipeline.RunCycle(context.Background(), time.Now())
	if err == nil {
		t.Fatalf("expected cycle error on build failure")
	}

	var buildErr *domain.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("expected BuildError, got %T", err)
	}

	if len(publisher.published) != 0 {
		t.Fatalf("build failure must not publish")
	}
}
