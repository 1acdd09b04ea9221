package sources

import (
	"log/slog"

	"kiosco/internal/fetcher"
)

const wiredFeed = "https://www.wired.com/feed/rss"

// NewWired returns the scraper for Wired's RSS feed.
func NewWired(client *fetcher.Client, logger *slog.Logger) *RSSFeed {
	return NewRSSFeed("Wired", wiredFeed, client, logger)
}
