package ports

import (
	"context"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
)

// Fetcher retrieves raw listing-page markup from the network.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// Extractor turns markup into a Program batch. It never fails on malformed
// input; degraded reports that the placeholder batch was substituted.
type Extractor interface {
	Extract(markup string, now time.Time) (programs []domain.Program, degraded bool)
}

// FeedBuilder renders a Program batch into a complete RSS document in memory.
type FeedBuilder interface {
	Build(info domain.FeedInfo, programs []domain.Program, now time.Time) ([]byte, error)
}

// Publisher stores the rendered feed and exposes the latest snapshot for
// serving. A failed cycle leaves the previous snapshot in place.
type Publisher interface {
	Publish(data []byte) error
	Latest() ([]byte, bool)
}

// Scheduler controls when pipeline cycles execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
