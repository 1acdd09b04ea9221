package sources

import (
	"log/slog"

	"kiosco/internal/fetcher"
)

const theVergeFeed = "https://www.theverge.com/rss/index.xml"

// NewTheVerge returns the scraper for The Verge's Atom feed.
func NewTheVerge(client *fetcher.Client, logger *slog.Logger) *RSSFeed {
	return NewRSSFeed("The Verge", theVergeFeed, client, logger)
}
