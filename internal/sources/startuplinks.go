package sources

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const startuplinksURL = "https://startuplinks.world"

// Startuplinks scrapes the Startuplinks aggregator. Cards carry an outbound
// story link plus a local permalink; the outbound link is preferred since
// readers land on the original story.
type Startuplinks struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

func NewStartuplinks(client *fetcher.Client, logger *slog.Logger) *Startuplinks {
	return &Startuplinks{
		client:  client,
		baseURL: startuplinksURL,
		logger:  logger.With("source", "startuplinks"),
	}
}

func (s *Startuplinks) Name() string { return "Startuplinks" }

func (s *Startuplinks) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	doc, err := s.client.Document(ctx, s.baseURL)
	if err != nil {
		return nil, &types.SourceError{Source: s.Name(), Err: err}
	}

	var out []types.RawArticle
	doc.Find("article a, .card a, h2 a, h3 a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || skipNavHref(href) {
			return
		}
		link := resolveURL(s.baseURL, href)
		if link == "" {
			return
		}
		title := strings.TrimSpace(sel.Text())
		if !validTitle(title) {
			return
		}

		out = append(out, types.RawArticle{
			Title:  title,
			URL:    link,
			Source: s.Name(),
		})
	})

	return capLimit(dedupeByURL(out), limit), nil
}
