package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
	"github.com/dilluhn/npo-rss-feed/internal/ports"
)

// PageFetcher retrieves listing-page markup over HTTP. One request per call;
// retry policy belongs to the scheduler, not here.
type PageFetcher struct {
	client    *http.Client
	userAgent string
}

var _ ports.Fetcher = (*PageFetcher)(nil)

// NewPageFetcher wires an HTTP client with the given timeout and the client
// identification header sent with every request.
func NewPageFetcher(client *http.Client, timeout time.Duration, userAgent string) *PageFetcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &PageFetcher{client: client, userAgent: userAgent}
}

// Fetch performs a single GET and returns the body as text. Network failure,
// timeout, and non-success status all surface as *domain.FetchError.
func (f *PageFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &domain.FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &domain.FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.FetchError{URL: pageURL, Err: fmt.Errorf("read body: %w", err)}
	}

	return string(body), nil
}
