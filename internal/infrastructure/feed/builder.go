package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
	"github.com/dilluhn/npo-rss-feed/internal/ports"
)

const (
	// NewTitlePrefix marks freshly added programs in feed readers.
	NewTitlePrefix = "NIEUW: "

	defaultDescription = "Programma op NPO"
	fallbackTitle      = "Naamloos programma"
)

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	PubDate     string        `xml:"pubDate"`
	GUID        rssGUID       `xml:"guid"`
	Enclosure   *rssEnclosure `xml:"enclosure,omitempty"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink string `xml:"isPermaLink,attr"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Length int    `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// Builder renders Program batches into RSS 2.0 documents. The whole document
// is built in memory and verified before any byte leaves this package, so a
// partial or corrupt feed is never handed to the publisher.
type Builder struct {
	parser *gofeed.Parser
}

var _ ports.FeedBuilder = (*Builder)(nil)

// NewBuilder constructs a reusable feed builder.
func NewBuilder() *Builder {
	return &Builder{parser: gofeed.NewParser()}
}

// Build serializes the batch into an RSS 2.0 document. Any serialization or
// validation failure surfaces as *domain.BuildError.
func (b *Builder) Build(info domain.FeedInfo, programs []domain.Program, now time.Time) ([]byte, error) {
	channel := rssChannel{
		Title:       info.Title,
		Link:        info.Link,
		Description: info.Description,
		Language:    info.Language,
		Items:       make([]rssItem, 0, len(programs)),
	}

	for _, p := range programs {
		channel.Items = append(channel.Items, buildItem(p, now))
	}

	body, err := xml.MarshalIndent(rssDocument{Version: "2.0", Channel: channel}, "", "  ")
	if err != nil {
		return nil, &domain.BuildError{Err: fmt.Errorf("marshal rss: %w", err)}
	}

	out := append([]byte(xml.Header), body...)
	out = append(out, '\n')

	// Parse the document back before releasing it; a feed that a reader
	// cannot parse must never be published.
	if _, err := b.parser.ParseString(string(out)); err != nil {
		return nil, &domain.BuildError{Err: fmt.Errorf("built document does not parse: %w", err)}
	}

	return out, nil
}

func buildItem(p domain.Program, now time.Time) rssItem {
	title := p.Title
	if title == "" {
		title = fallbackTitle
	}
	if p.IsNew {
		title = NewTitlePrefix + title
	}

	description := p.Description
	if description == "" {
		description = defaultDescription
	}

	publishedAt := p.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = now
	}

	item := rssItem{
		Title:       title,
		Link:        p.URL,
		Description: description,
		PubDate:     publishedAt.Format(time.RFC1123Z),
		GUID:        rssGUID{Value: p.URL, IsPermaLink: "true"},
	}

	if p.ImageURL != "" {
		item.Enclosure = &rssEnclosure{URL: p.ImageURL, Type: "image/jpeg"}
	}

	return item
}
