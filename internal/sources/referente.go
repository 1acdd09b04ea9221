package sources

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const referenteURL = "https://referente.mx"

// Referente scrapes Referente, which covers the Mexican startup ecosystem.
type Referente struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

func NewReferente(client *fetcher.Client, logger *slog.Logger) *Referente {
	return &Referente{
		client:  client,
		baseURL: referenteURL,
		logger:  logger.With("source", "referente"),
	}
}

func (r *Referente) Name() string { return "Referente" }

func (r *Referente) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	doc, err := r.client.Document(ctx, r.baseURL)
	if err != nil {
		return nil, &types.SourceError{Source: r.Name(), Err: err}
	}

	var out []types.RawArticle
	doc.Find("h2 a, h3 a, .entry-title a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || skipNavHref(href) {
			return
		}
		link := resolveURL(r.baseURL, href)
		if link == "" || !strings.Contains(link, "referente.mx") {
			return
		}
		title := strings.TrimSpace(sel.Text())
		if !validTitle(title) {
			return
		}

		desc := strings.TrimSpace(sel.Closest("article, div, li").Find("p").First().Text())

		out = append(out, types.RawArticle{
			Title:       title,
			Description: desc,
			URL:         link,
			Source:      r.Name(),
		})
	})

	return capLimit(dedupeByURL(out), limit), nil
}
