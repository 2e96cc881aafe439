package scheduler

import (
	"context"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/ports"
)

// IntervalScheduler runs the job immediately and then on a fixed interval.
// Cycles run sequentially; a slow job delays the next tick rather than
// overlapping it.
type IntervalScheduler struct {
	interval time.Duration
	stop     chan struct{}
}

var _ ports.Scheduler = (*IntervalScheduler)(nil)

// NewIntervalScheduler builds a scheduler with the given refresh interval.
func NewIntervalScheduler(interval time.Duration) *IntervalScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &IntervalScheduler{interval: interval}
}

// Start begins ticking; the job owns its own error handling so one bad cycle
// never terminates the loop.
func (s *IntervalScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	if s.stop != nil {
		return nil
	}

	// The goroutine selects on a local copy so Stop can clear the field
	// without racing the select below.
	stop := make(chan struct{})
	s.stop = stop
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		job(time.Now())
		for {
			select {
			case t := <-ticker.C:
				job(t)
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the ticker goroutine.
func (s *IntervalScheduler) Stop(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	close(s.stop)
	s.stop = nil
	return nil
}
