package sources

import (
	"context"
	"log/slog"

	"kiosco/internal/category"
	"kiosco/internal/config"
	"kiosco/internal/fetcher"
	"kiosco/internal/pipeline"
	"kiosco/internal/types"
)

// Scraper fetches raw articles from one external provider. Implementations
// dedupe by URL within their own result set and cap at limit before
// returning. Errors are per-source; the aggregator recovers them.
type Scraper interface {
	// Name returns the source display name.
	Name() string

	// Fetch returns up to limit raw articles.
	Fetch(ctx context.Context, limit int) ([]types.RawArticle, error)
}

// FetchByCategory fetches with a widened limit and applies the category
// filter in strict mode: a zero-match result stays empty rather than
// falling back to off-topic content.
func FetchByCategory(ctx context.Context, s Scraper, f *category.Filter, cat string, limit int) ([]types.RawArticle, error) {
	raw, err := s.Fetch(ctx, limit*3)
	if err != nil {
		return nil, err
	}
	out := f.FilterByCategory(raw, cat, true)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// job wraps a plain fetch as an aggregator job.
func job(s Scraper, limit int) pipeline.Job {
	return pipeline.Job{
		Name: s.Name(),
		Run: func(ctx context.Context) ([]types.RawArticle, error) {
			return s.Fetch(ctx, limit)
		},
	}
}

// jobByCategory wraps a category-filtered fetch as an aggregator job.
func jobByCategory(s Scraper, f *category.Filter, cat string, limit int) pipeline.Job {
	return pipeline.Job{
		Name: s.Name(),
		Run: func(ctx context.Context) ([]types.RawArticle, error) {
			return FetchByCategory(ctx, s, f, cat, limit)
		},
	}
}

// LandingJobs returns the fixed source set behind the landing feed, with
// category and limit parameters baked in per source. Order here does not
// affect output order; the pipeline sorts by recency.
func LandingJobs(client *fetcher.Client, filter *category.Filter, cfg *config.Config, logger *slog.Logger) []pipeline.Job {
	return []pipeline.Job{
		job(NewHackerNews(client, logger), 8),
		jobByCategory(NewTechCrunch(client, logger), filter, category.Technology, 6),
		jobByCategory(NewTheVerge(client, logger), filter, category.Technology, 6),
		jobByCategory(NewWired(client, logger), filter, category.Technology, 5),
		job(NewCrunchbaseNews(client, logger), 5),
		job(NewNoro(client, logger), 6),
		job(NewReferente(client, logger), 6),
		jobByCategory(NewStartuplinks(client, logger), filter, category.Startups, 5),
		jobByCategory(NewExpansion(client, logger), filter, category.Business, 6),
		job(NewContxto(client, logger), 5),
		jobByCategory(NewForbesMexico(client, logger), filter, category.Business, 5),
		job(NewNewsData(client, cfg.Sources.NewsDataKey, logger), 8),
		job(NewNewsAPI(client, cfg.Sources.NewsAPIKey, logger), 8),
		job(NewRSSFeed("El Economista", "https://www.eleconomista.com.mx/rss/ultimas-noticias", client, logger), 5),
	}
}
