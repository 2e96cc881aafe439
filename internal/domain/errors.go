package domain

import (
	"errors"
	"fmt"
)

// ErrExtractionDegraded marks a cycle where scraping produced nothing and the
// placeholder batch was substituted. It is a recorded condition, not a failure:
// the cycle still publishes a feed.
var ErrExtractionDegraded = errors.New("extraction degraded, placeholder batch substituted")

// FetchError covers network failure, timeout, and non-success HTTP status for
// a single listing-page request.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// BuildError signals that the feed document could not be serialized or did not
// parse back as valid RSS. It indicates a programming defect, so the cycle is
// aborted instead of publishing.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build feed: %v", e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
