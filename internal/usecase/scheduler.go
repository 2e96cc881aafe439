package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
	"github.com/dilluhn/npo-rss-feed/internal/ports"
)

// Scheduler wires the interval driver with the pipeline use case. Cycle
// errors are logged and swallowed here: a long-running process must survive
// any single bad cycle and keep serving the previous feed.
type Scheduler struct {
	driver   ports.Scheduler
	pipeline *Pipeline
	logger   *slog.Logger
}

// NewScheduler returns a helper to start/stop the recurring refresh job.
func NewScheduler(driver ports.Scheduler, pipeline *Pipeline, logger *slog.Logger) *Scheduler {
	return &Scheduler{driver: driver, pipeline: pipeline, logger: logger}
}

// Start registers the pipeline with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.pipeline == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if err := s.pipeline.RunCycle(ctx, trigger); err != nil {
			var buildErr *domain.BuildError
			if errors.As(err, &buildErr) {
				// A build failure is a defect, not an environmental hiccup.
				s.log(slog.LevelError, "cycle aborted", err)
				return
			}
			s.log(slog.LevelWarn, "cycle failed, previous feed retained", err)
		}
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}

func (s *Scheduler) log(level slog.Level, msg string, err error) {
	if s.logger != nil {
		s.logger.Log(context.Background(), level, msg, "error", err)
	}
}
