package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"kiosco/internal/types"
)

// FallbackSummary replaces an empty teaser in aggregator output. The
// rendering side never shows an empty string.
const FallbackSummary = "Read this story at the source."

// Job is one source invocation in the fan-out, with its category and limit
// parameters already baked in.
type Job struct {
	Name string
	Run  func(ctx context.Context) ([]types.RawArticle, error)
}

// Aggregator fans out to every configured source concurrently, flattens
// the per-source results, and hands them to the normalizer.
type Aggregator struct {
	jobs        []Job
	norm        *Normalizer
	maxArticles int
	logger      *slog.Logger
}

// NewAggregator creates an aggregator over a fixed job list.
func NewAggregator(jobs []Job, norm *Normalizer, maxArticles int, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		jobs:        jobs,
		norm:        norm,
		maxArticles: maxArticles,
		logger:      logger.With("component", "aggregator"),
	}
}

// FetchLatest runs every job concurrently and returns the normalized,
// deduplicated, capped article list. A failed source contributes nothing;
// the aggregation itself always succeeds, degrading to an empty list when
// every source fails.
func (a *Aggregator) FetchLatest(ctx context.Context) []types.Article {
	results := make([][]types.RawArticle, len(a.jobs))

	var wg sync.WaitGroup
	for i, job := range a.jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.logger.Error("source panicked", "source", job.Name, "panic", r)
				}
			}()

			articles, err := job.Run(ctx)
			if err != nil {
				a.logger.Warn("source failed", "source", job.Name, "error", err)
				return
			}
			a.logger.Debug("source complete", "source", job.Name, "count", len(articles))
			results[i] = articles
		}(i, job)
	}
	wg.Wait()

	var combined []types.RawArticle
	for _, r := range results {
		combined = append(combined, r...)
	}

	out := a.norm.DedupeAndSort(combined)
	if a.maxArticles > 0 && len(out) > a.maxArticles {
		out = out[:a.maxArticles]
	}
	for i := range out {
		if out[i].Summary == "" {
			out[i].Summary = FallbackSummary
		}
	}

	a.logger.Info("aggregation complete",
		"sources", len(a.jobs),
		"raw", len(combined),
		"articles", len(out),
	)
	return out
}
