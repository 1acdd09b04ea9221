package sources

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/antchfx/htmlquery"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const expansionURL = "https://expansion.mx/empresas"

// Expansion scrapes the Expansión business section. The page nests its
// headlines several wrapper divs deep with generated class names, so the
// scraper matches on document structure with XPath instead of CSS classes.
type Expansion struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

func NewExpansion(client *fetcher.Client, logger *slog.Logger) *Expansion {
	return &Expansion{
		client:  client,
		baseURL: expansionURL,
		logger:  logger.With("source", "expansion"),
	}
}

func (e *Expansion) Name() string { return "Expansión" }

func (e *Expansion) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	body, err := e.client.Get(ctx, e.baseURL)
	if err != nil {
		return nil, &types.SourceError{Source: e.Name(), Err: err}
	}

	doc, err := htmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &types.SourceError{Source: e.Name(), Err: err}
	}

	var out []types.RawArticle
	for _, node := range htmlquery.Find(doc, "//a[.//h2 or .//h3]") {
		href := htmlquery.SelectAttr(node, "href")
		if href == "" || skipNavHref(href) {
			continue
		}
		link := resolveURL(e.baseURL, href)
		if link == "" || !strings.Contains(link, "expansion.mx") {
			continue
		}
		title := strings.TrimSpace(htmlquery.InnerText(node))
		if !validTitle(title) {
			continue
		}

		var image string
		if img := htmlquery.FindOne(node, ".//img"); img != nil {
			image = htmlquery.SelectAttr(img, "src")
		}

		out = append(out, types.RawArticle{
			Title:  title,
			URL:    link,
			Source: e.Name(),
			Image:  image,
		})
	}

	return capLimit(dedupeByURL(out), limit), nil
}
