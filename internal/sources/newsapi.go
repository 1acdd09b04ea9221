package sources

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const newsAPIEndpoint = "https://newsapi.org/v2/top-headlines"

// newsAPICountries widens coverage across the newsletter's two markets.
var newsAPICountries = []string{"us", "mx"}

// NewsAPI reads newsapi.org top headlines, fanning out one request per
// country. A failed country is logged and skipped; ordering between
// countries is not guaranteed. Without an API key the source contributes
// nothing instead of failing the fan-out.
type NewsAPI struct {
	client   *fetcher.Client
	endpoint string
	apiKey   string
	logger   *slog.Logger
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

func NewNewsAPI(client *fetcher.Client, apiKey string, logger *slog.Logger) *NewsAPI {
	return &NewsAPI{
		client:   client,
		endpoint: newsAPIEndpoint,
		apiKey:   apiKey,
		logger:   logger.With("source", "newsapi"),
	}
}

func (n *NewsAPI) Name() string { return "NewsAPI" }

func (n *NewsAPI) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	if n.apiKey == "" {
		n.logger.Info("api key not configured, skipping")
		return nil, nil
	}

	perCountry := make([][]types.RawArticle, len(newsAPICountries))
	var wg sync.WaitGroup
	for i, country := range newsAPICountries {
		wg.Add(1)
		go func(i int, country string) {
			defer wg.Done()
			articles, err := n.fetchCountry(ctx, country)
			if err != nil {
				n.logger.Warn("country fetch failed", "country", country, "error", err)
				return
			}
			perCountry[i] = articles
		}(i, country)
	}
	wg.Wait()

	var out []types.RawArticle
	for _, articles := range perCountry {
		out = append(out, articles...)
	}
	return capLimit(dedupeByURL(out), limit), nil
}

func (n *NewsAPI) fetchCountry(ctx context.Context, country string) ([]types.RawArticle, error) {
	q := url.Values{}
	q.Set("apiKey", n.apiKey)
	q.Set("country", country)
	q.Set("category", "technology")

	var resp newsAPIResponse
	if err := n.client.JSON(ctx, n.endpoint+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	out := make([]types.RawArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		source := a.Source.Name
		if source == "" {
			source = n.Name()
		}
		out = append(out, types.RawArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      source,
			Image:       a.URLToImage,
			PublishedAt: a.PublishedAt,
		})
	}
	return out, nil
}
