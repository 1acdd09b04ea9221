package sources

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"kiosco/internal/fetcher"
	"kiosco/internal/types"
)

const techCrunchURL = "https://techcrunch.com/"

// TechCrunch article URLs embed the publish date, which makes a reliable
// href heuristic: /YYYY/MM/DD/ paths are stories, everything else is nav.
var reTechCrunchStory = regexp.MustCompile(`techcrunch\.com/(\d{4})/(\d{2})/(\d{2})/`)

// TechCrunch scrapes the homepage for story links.
type TechCrunch struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

func NewTechCrunch(client *fetcher.Client, logger *slog.Logger) *TechCrunch {
	return &TechCrunch{
		client:  client,
		baseURL: techCrunchURL,
		logger:  logger.With("source", "techcrunch"),
	}
}

func (t *TechCrunch) Name() string { return "TechCrunch" }

func (t *TechCrunch) Fetch(ctx context.Context, limit int) ([]types.RawArticle, error) {
	doc, err := t.client.Document(ctx, t.baseURL)
	if err != nil {
		return nil, &types.SourceError{Source: t.Name(), Err: err}
	}

	var out []types.RawArticle
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || skipNavHref(href) {
			return
		}
		abs := resolveURL(t.baseURL, href)
		m := reTechCrunchStory.FindStringSubmatch(abs)
		if m == nil {
			return
		}

		title := strings.TrimSpace(sel.Text())
		if !validTitle(title) {
			return
		}

		// The date in the URL path is the best available timestamp on
		// the listing page.
		published, perr := time.Parse("2006/01/02", m[1]+"/"+m[2]+"/"+m[3])
		if perr != nil {
			published = time.Time{}
		}

		// Teaser from a sibling excerpt paragraph, when the card has one.
		desc := strings.TrimSpace(sel.Closest("div, article, li").Find("p").First().Text())

		out = append(out, types.RawArticle{
			Title:       title,
			Description: desc,
			URL:         abs,
			Source:      t.Name(),
			PublishedAt: published,
		})
	})

	return capLimit(dedupeByURL(out), limit), nil
}
