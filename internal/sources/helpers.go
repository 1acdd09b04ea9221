package sources

import (
	"net/url"
	"strings"

	"kiosco/internal/types"
)

// Title length bounds for HTML scraping. Anchors shorter than the minimum
// are almost always navigation labels ("Read more", section names); longer
// ones are usually concatenated teaser blocks, not headlines.
const (
	minTitleLen = 10
	maxTitleLen = 300
)

// validTitle reports whether an anchor text looks like a headline.
func validTitle(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= minTitleLen && n <= maxTitleLen
}

// resolveURL turns href into an absolute URL against base. Returns "" when
// either side is unparseable.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	h, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := b.ResolveReference(h)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// dedupeByURL drops later entries sharing a URL with an earlier one.
// Every scraper dedupes its own output before returning.
func dedupeByURL(articles []types.RawArticle) []types.RawArticle {
	seen := make(map[string]struct{}, len(articles))
	out := articles[:0]
	for _, a := range articles {
		if _, dup := seen[a.URL]; dup {
			continue
		}
		seen[a.URL] = struct{}{}
		out = append(out, a)
	}
	return out
}

// capLimit trims a result set to the requested limit. A limit of zero or
// less means unbounded.
func capLimit(articles []types.RawArticle, limit int) []types.RawArticle {
	if limit > 0 && len(articles) > limit {
		return articles[:limit]
	}
	return articles
}

// skipNavHref filters hrefs that point at section indexes, author pages,
// tag pages, and similar non-article destinations.
func skipNavHref(href string) bool {
	lower := strings.ToLower(href)
	for _, frag := range []string{
		"/author/", "/tag/", "/category/", "/page/", "/about", "/contact",
		"/privacy", "/terms", "#", "mailto:", "javascript:",
	} {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}
