package sources

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const newsDataEndpoint = "https://newsdata.io/api/1/latest"

// NewsData reads the newsdata.io JSON API, covering both the US and Mexico
// in one request via the country parameter. Without an API key the source
// contributes nothing instead of failing the fan-out.
type NewsData struct {
	client   *fetcher.Client
	endpoint string
	apiKey   string
	logger   *slog.Logger
}

type newsDataResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string   `json:"title"`
		Link        string   `json:"link"`
		Description string   `json:"description"`
		ImageURL    string   `json:"image_url"`
		PubDate     string   `json:"pubDate"`
		SourceName  string   `json:"source_name"`
		Creator     []string `json:"creator"`
	} `json:"results"`
}

func NewNewsData(client *fetcher.Client, apiKey string, logger *slog.Logger) *NewsData {
	return &NewsData{
		client:   client,
		endpoint: newsDataEndpoint,
		apiKey:   apiKey,
		logger:   logger.With("source", "newsdata"),
	}
}

func (n *NewsData) Name() string { return "NewsData" }

func (n *NewsData) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	if n.apiKey == "" {
		n.logger.Info("api key not configured, skipping")
		return nil, nil
	}

	q := url.Values{}
	q.Set("apikey", n.apiKey)
	q.Set("category", "technology,business")
	q.Set("country", "us,mx")
	q.Set("language", "en,es")

	var resp newsDataResponse
	if err := n.client.JSON(ctx, n.endpoint+"?"+q.Encode(), &resp); err != nil {
		return nil, &types.SourceError{Source: n.Name(), Err: err}
	}

	out := make([]types.RawArticle, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.Title == "" || r.Link == "" {
			continue
		}

		// newsdata.io timestamps look like "2026-08-30 14:05:00" (UTC).
		var published time.Time
		if t, err := time.Parse("2006-01-02 15:04:05", r.PubDate); err == nil {
			published = t.UTC()
		}

		source := r.SourceName
		if source == "" {
			source = n.Name()
		}

		out = append(out, types.RawArticle{
			Title:       r.Title,
			Description: r.Description,
			URL:         r.Link,
			Source:      source,
			Image:       r.ImageURL,
			PublishedAt: published,
		})
	}
	return capLimit(dedupeByURL(out), limit), nil
}
