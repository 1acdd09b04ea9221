package sources

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const hackerNewsAPI = "https://hacker-news.firebaseio.com/v0"

// HackerNews reads the official Firebase API: the top-story ID list first,
// then the items concurrently. Items without an external URL (Ask HN,
// polls) are skipped.
type HackerNews struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

type hnItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Time  int64  `json:"time"`
	Type  string `json:"type"`
}

func NewHackerNews(client *fetcher.Client, logger *slog.Logger) *HackerNews {
	return &HackerNews{
		client:  client,
		baseURL: hackerNewsAPI,
		logger:  logger.With("source", "hackernews"),
	}
}

func (h *HackerNews) Name() string { return "Hacker News" }

func (h *HackerNews) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	var ids []int
	if err := h.client.JSON(ctx, h.baseURL+"/topstories.json", &ids); err != nil {
		return nil, &types.SourceError{Source: h.Name(), Err: err}
	}

	// Fetch more items than requested since some will be skipped.
	want := limit * 2
	if want <= 0 || want > len(ids) {
		want = len(ids)
	}
	ids = ids[:want]

	items := make([]*hnItem, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			var item hnItem
			url := fmt.Sprintf("%s/item/%d.json", h.baseURL, id)
			if err := h.client.JSON(ctx, url, &item); err != nil {
				h.logger.Debug("item fetch failed", "id", id, "error", err)
				return
			}
			items[i] = &item
		}(i, id)
	}
	wg.Wait()

	out := make([]types.RawArticle, 0, limit)
	for _, item := range items {
		if item == nil || item.Type != "story" || item.URL == "" || item.Title == "" {
			continue
		}
		out = append(out, types.RawArticle{
			Title:       item.Title,
			URL:         item.URL,
			Source:      h.Name(),
			PublishedAt: time.Unix(item.Time, 0).UTC(),
		})
	}
	return capLimit(dedupeByURL(out), limit), nil
}
