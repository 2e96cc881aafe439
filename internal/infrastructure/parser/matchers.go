package parser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
	"github.com/dilluhn/npo-rss-feed/internal/scanner"
)

const minTitleLength = 3

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// CardMatcher extracts programs from anchor cards that wrap a heading element.
// This is the primary signature of the npo.nl homepage grid.
type CardMatcher struct{}

var _ scanner.Matcher = CardMatcher{}

func (CardMatcher) Name() string {
	return "card"
}

func (CardMatcher) Match(doc *goquery.Document, base *url.URL) []domain.Program {
	var programs []domain.Program

	doc.Find("a[href]").Each(func(_ int, card *goquery.Selection) {
		href, _ := card.Attr("href")
		// Fragment and external links are navigation, not program cards.
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "http") {
			return
		}

		title := headingText(card)
		if len(title) < minTitleLength {
			return
		}

		programs = append(programs, domain.Program{
			Title:       title,
			URL:         resolveLink(base, href),
			Description: descriptionText(card),
			ImageURL:    imageLink(card, base),
			IsNew:       hasNewBadge(card.Text()),
		})
	})

	return programs
}

// TileMatcher extracts programs from attribute-labelled tiles linking under
// /start/. Fallback signature for the redesigned start page, where titles live
// in title attributes instead of heading children.
type TileMatcher struct{}

var _ scanner.Matcher = TileMatcher{}

func (TileMatcher) Name() string {
	return "tile"
}

func (TileMatcher) Match(doc *goquery.Document, base *url.URL) []domain.Program {
	var programs []domain.Program

	doc.Find(`a[href^="/start/"]`).Each(func(_ int, tile *goquery.Selection) {
		href, _ := tile.Attr("href")

		title := strings.TrimSpace(tile.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(tile.AttrOr("aria-label", ""))
		}
		if len(title) < minTitleLength {
			return
		}

		programs = append(programs, domain.Program{
			Title:       title,
			URL:         resolveLink(base, href),
			Description: descriptionText(tile),
			ImageURL:    imageLink(tile, base),
			IsNew:       hasNewBadge(tile.Text()),
		})
	})

	return programs
}

func headingText(container *goquery.Selection) string {
	for _, tag := range headingTags {
		heading := container.Find(tag).First()
		if heading.Length() > 0 {
			return strings.TrimSpace(heading.Text())
		}
	}
	return ""
}

func descriptionText(container *goquery.Selection) string {
	var description string
	container.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class := strings.ToLower(sel.AttrOr("class", ""))
		if strings.Contains(class, "desc") || strings.Contains(class, "summary") || strings.Contains(class, "text") {
			description = strings.TrimSpace(sel.Text())
			return false
		}
		return true
	})
	return description
}

func imageLink(container *goquery.Selection, base *url.URL) string {
	src, exists := container.Find("img[src]").First().Attr("src")
	if !exists || src == "" {
		return ""
	}
	return resolveLink(base, src)
}

// hasNewBadge reports whether the container carries a "new" label. This is a
// pure text cue: a program re-labelled "nieuw" long after release still counts.
func hasNewBadge(text string) bool {
	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "nieuw") {
		return true
	}
	for _, field := range strings.Fields(lowered) {
		if strings.Trim(field, ":!.,") == "new" {
			return true
		}
	}
	return false
}

func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	if base == nil || ref.IsAbs() {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
