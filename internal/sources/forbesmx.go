package sources

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const forbesMexicoURL = "https://forbes.com.mx/negocios/"

// ForbesMexico scrapes the Forbes México business section.
type ForbesMexico struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

func NewForbesMexico(client *fetcher.Client, logger *slog.Logger) *ForbesMexico {
	return &ForbesMexico{
		client:  client,
		baseURL: forbesMexicoURL,
		logger:  logger.With("source", "forbes-mexico"),
	}
}

func (f *ForbesMexico) Name() string { return "Forbes México" }

func (f *ForbesMexico) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	doc, err := f.client.Document(ctx, f.baseURL)
	if err != nil {
		return nil, &types.SourceError{Source: f.Name(), Err: err}
	}

	var out []types.RawArticle
	doc.Find("h2 a, h3 a, .entry-title a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || skipNavHref(href) {
			return
		}
		link := resolveURL(f.baseURL, href)
		if link == "" || !strings.Contains(link, "forbes.com.mx") {
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
			Source:      f.Name(),
			Image:       image,
		})
	})

	return capLimit(dedupeByURL(out), limit), nil
}
