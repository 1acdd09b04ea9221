package pipeline

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"

	"kiosco/internal/types"
)

// SummaryLimit is the teaser length budget in runes.
const SummaryLimit = 180

// Normalizer canonicalizes raw scraper output into the stable article shape.
type Normalizer struct {
	blocked map[string]struct{}
	now     func() time.Time
}

// NewNormalizer creates a normalizer with the given hostname blocklist.
// Entries are matched against lowercased, www-stripped hostnames.
func NewNormalizer(blockedHosts []string) *Normalizer {
	blocked := make(map[string]struct{}, len(blockedHosts))
	for _, h := range blockedHosts {
		h = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(h)), "www.")
		if h != "" {
			blocked[h] = struct{}{}
		}
	}
	return &Normalizer{blocked: blocked, now: time.Now}
}

// Normalize canonicalizes one raw item. The second return is false when the
// item is rejected: missing url or title, unparseable url, or a blocked
// hostname. Rejection is a filtering decision, not an error.
func (n *Normalizer) Normalize(raw types.RawArticle) (types.Article, bool) {
	rawURL := strings.TrimSpace(raw.URL)
	title := collapseSpace(raw.Title)
	if rawURL == "" || title == "" {
		return types.Article{}, false
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return types.Article{}, false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if _, ok := n.blocked[host]; ok {
		return types.Article{}, false
	}

	source := strings.TrimSpace(raw.Source)
	if source == "" {
		source = host
	}

	published := raw.PublishedAt
	if published.IsZero() {
		published = n.now()
	}

	return types.Article{
		Slug:        types.Slug(rawURL),
		Title:       title,
		Summary:     truncate(collapseSpace(stripHTML(raw.Description)), SummaryLimit),
		URL:         rawURL,
		Source:      source,
		Image:       strings.TrimSpace(raw.Image),
		PublishedAt: published,
	}, true
}

// DedupeAndSort normalizes every raw item, drops duplicates by slug
// (first occurrence wins), and returns the survivors sorted by publishedAt
// descending. The sort is stable, so equal timestamps preserve input order.
func (n *Normalizer) DedupeAndSort(raws []types.RawArticle) []types.Article {
	seen := make(map[string]struct{}, len(raws))
	out := make([]types.Article, 0, len(raws))

	for _, raw := range raws {
		art, ok := n.Normalize(raw)
		if !ok {
			continue
		}
		if _, dup := seen[art.Slug]; dup {
			continue
		}
		seen[art.Slug] = struct{}{}
		out = append(out, art)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

// stripHTML removes tags and unescapes entities, keeping text content only.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	var b strings.Builder
	tok := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.WriteString(tok.Token().Data)
			b.WriteByte(' ')
		}
	}
}

// collapseSpace trims and collapses runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most limit runes, ending with an ellipsis when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRight(string(runes[:limit-1]), " ") + "…"
}
