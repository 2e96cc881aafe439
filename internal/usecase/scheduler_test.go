package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
)

// loopDriver invokes the job a fixed number of times synchronously, the way
// the interval driver does once per tick. If any cycle error escaped the job,
// the loop would die before completing its cycles.
type loopDriver struct {
	cycles int
	ran    int
}

func (d *loopDriver) Start(ctx context.Context, job func(time.Time)) error {
	for i := 0; i < d.cycles; i++ {
		job(time.Now())
		d.ran++
	}
	return nil
}

func (d *loopDriver) Stop(ctx context.Context) error { return nil }

func TestSchedulerSurvivesFailingCycles(t *testing.T) {
	t.Parallel()

	previous := []byte("<rss>oud</rss>")
	publisher := &recordingPublisher{latest: previous}

	pipeline := newPipeline(
		stubFetcher{err: &domain.FetchError{URL: "https://npo.nl/", StatusCode: 503}},
		stubExtractor{},
		stubBuilder{data: []byte("<rss>nieuw</rss>")},
		publisher,
	)

	driver := &loopDriver{cycles: 3}
	sched := NewScheduler(driver, pipeline, nil)

	if err := sched.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if driver.ran != 3 {
		t.Fatalf("expected the loop to survive 3 failing cycles, ran %d", driver.ran)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("failing cycles must not publish")
	}
	latest, ok := publisher.Latest()
	if !ok || string(latest) != string(previous) {
		t.Fatalf("previous document must remain in place")
	}

	if err := sched.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
}

func TestSchedulerSwallowsBuildErrors(t *testing.T) {
	t.Parallel()

	publisher := &recordingPublisher{}
	pipeline := newPipeline(
		stubFetcher{body: "<html></html>"},
		stubExtractor{programs: []domain.Program{{Title: "X", URL: "https://npo.nl/p/x"}}},
		stubBuilder{err: &domain.BuildError{Err: errors.New("boom")}},
		publisher,
	)

	driver := &loopDriver{cycles: 2}
	sched := NewScheduler(driver, pipeline, nil)

	if err := sched.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if driver.ran != 2 {
		t.Fatalf("expected the loop to survive aborted cycles, ran %d", driver.ran)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("aborted cycles must not publish")
	}
}
