package sources

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const crunchbaseNewsURL = "https://news.crunchbase.com"

// CrunchbaseNews scrapes the Crunchbase News front page, a WordPress site
// that keeps headlines in entry-title blocks.
type CrunchbaseNews struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

func NewCrunchbaseNews(client *fetcher.Client, logger *slog.Logger) *CrunchbaseNews {
	return &CrunchbaseNews{
		client:  client,
		baseURL: crunchbaseNewsURL,
		logger:  logger.With("source", "crunchbase"),
	}
}

func (c *CrunchbaseNews) Name() string { return "Crunchbase News" }

func (c *CrunchbaseNews) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	doc, err := c.client.Document(ctx, c.baseURL)
	if err != nil {
		return nil, &types.SourceError{Source: c.Name(), Err: err}
	}

	var out []types.RawArticle
	doc.Find("h2.entry-title a, h3.entry-title a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || skipNavHref(href) {
			return
		}
		link := resolveURL(c.baseURL, href)
		if link == "" {
			return
		}
		title := strings.TrimSpace(sel.Text())
		if !validTitle(title) {
			return
		}

		desc := strings.TrimSpace(sel.Closest("article, div").Find("p").First().Text())
		image, _ := sel.Closest("article, div").Find("img").First().Attr("src")

		out = append(out, types.RawArticle{
			Title:       title,
			Description: desc,
			URL:         link,
			Source:      c.Name(),
			Image:       image,
		})
	})

	return capLimit(dedupeByURL(out), limit), nil
}
