package domain

import "time"

// Program is a core entity describing one listing entry scraped from npo.nl.
type Program struct {
	Title       string
	URL         string
	Description string
	ImageURL    string
	PublishedAt time.Time
	IsNew       bool
}

// FeedInfo carries channel-level metadata for the rendered feed.
type FeedInfo struct {
	Title       string
	Link        string
	Description string
	Language    string
}
