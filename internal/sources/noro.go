package sources

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const noroURL = "https://somosnoro.com"

// Noro scrapes Noro, a northern-Mexico news outlet. The site renders
// article cards with the headline inside the card link, so the scraper
// walks every anchor and keeps the ones with headline-shaped text.
type Noro struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

func NewNoro(client *fetcher.Client, logger *slog.Logger) *Noro {
	return &Noro{
		client:  client,
		baseURL: noroURL,
		logger:  logger.With("source", "noro"),
	}
}

func (n *Noro) Name() string { return "Noro" }

func (n *Noro) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	doc, err := n.client.Document(ctx, n.baseURL)
	if err != nil {
		return nil, &types.SourceError{Source: n.Name(), Err: err}
	}

	var out []types.RawArticle
	doc.Find("article a, .post a, h2 a, h3 a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || skipNavHref(href) {
			return
		}
		link := resolveURL(n.baseURL, href)
		if link == "" || !strings.Contains(link, "somosnoro.com") {
			return
		}
		title := strings.TrimSpace(sel.Text())
		if !validTitle(title) {
			return
		}

		out = append(out, types.RawArticle{
			Title:  title,
			URL:    link,
			Source: n.Name(),
		})
	})

	return capLimit(dedupeByURL(out), limit), nil
}
