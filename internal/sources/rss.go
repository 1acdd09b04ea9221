package sources

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

// RSSFeed is the generic feed reader. Any RSS/Atom source can be wired
// with just a display name and a feed URL; The Verge and Wired are thin
// configurations of this type.
type RSSFeed struct {
	name    string
	feedURL string
	client  *fetcher.Client
	logger  *slog.Logger
}

// NewRSSFeed creates a scraper over one RSS/Atom feed.
func NewRSSFeed(name, feedURL string, client *fetcher.Client, logger *slog.Logger) *RSSFeed {
	return &RSSFeed{
		name:    name,
		feedURL: feedURL,
		client:  client,
		logger:  logger.With("source", strings.ToLower(strings.ReplaceAll(name, " ", "-"))),
	}
}

func (r *RSSFeed) Name() string { return r.name }

func (r *RSSFeed) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	feed, err := r.client.Feed(ctx, r.feedURL)
	if err != nil {
		return nil, &types.SourceError{Source: r.name, Err: err}
	}

	out := make([]types.RawArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" || item.Link == "" {
			continue
		}

		out = append(out, types.RawArticle{
			Title:       title,
			Description: feedDescription(item),
			URL:         stripTracking(item.Link),
			Source:      r.name,
			Image:       feedImage(item),
			PublishedAt: feedTime(item),
		})
	}
	return capLimit(dedupeByURL(out), limit), nil
}

// feedDescription prefers the item description and falls back to content.
func feedDescription(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

// feedTime picks the best available timestamp, zero when the feed has none.
func feedTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}

func feedImage(item *gofeed.Item) string {
	if item.Image != nil {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

// stripTracking removes utm query parameters some feeds append to links.
func stripTracking(link string) string {
	if idx := strings.Index(link, "?utm_"); idx > 0 {
		return link[:idx]
	}
	return link
}
