package sources

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const contxtoURL = "https://contxto.com/en/"

// Contxto scrapes Contxto, which covers Latin American tech and venture
// news. The English edition is used so titles mix naturally with the rest
// of the feed.
type Contxto struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

func NewContxto(client *fetcher.Client, logger *slog.Logger) *Contxto {
	return &Contxto{
		client:  client,
		baseURL: contxtoURL,
		logger:  logger.With("source", "contxto"),
	}
}

func (c *Contxto) Name() string { return "Contxto" }

func (c *Contxto) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	doc, err := c.client.Document(ctx, c.baseURL)
	if err != nil {
		return nil, &types.SourceError{Source: c.Name(), Err: err}
	}

	var out []types.RawArticle
	doc.Find(".entry-title a, h2 a, h3 a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || skipNavHref(href) {
			return
		}
		link := resolveURL(c.baseURL, href)
		if link == "" || !strings.Contains(link, "contxto.com") {
			return
		}
		title := strings.TrimSpace(sel.Text())
		if !validTitle(title) {
			return
		}

		image, _ := sel.Closest("article, div").Find("img").First().Attr("src")

		out = append(out, types.RawArticle{
			Title:  title,
			URL:    link,
			Source: c.Name(),
			Image:  image,
		})
	})

	return capLimit(dedupeByURL(out), limit), nil
}
