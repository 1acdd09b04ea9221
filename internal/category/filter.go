package category

import (
	"strings"

	"kiosco/internal/types"
)

// Filter classifies article text against per-category keyword lists.
//
// Matching is case-insensitive substring containment with no word-boundary
// checks. That can false-positive on substrings embedded in unrelated words;
// the behavior is kept deliberately since changing it changes which articles
// are ever shown.
type Filter struct {
	keywords map[string]Keywords
}

// NewFilter builds a filter from the default keyword lists. Overrides
// replace the list for a category when non-empty; unknown categories in
// overrides are added as new categories.
func NewFilter(overrides map[string]Keywords) *Filter {
	kw := defaultKeywords()
	for name, lists := range overrides {
		name = strings.ToLower(name)
		if len(lists.English) == 0 && len(lists.Spanish) == 0 {
			continue
		}
		kw[name] = lists
	}
	return &Filter{keywords: kw}
}

// Matches reports whether text contains at least minMatches keyword
// occurrences for the category, across both language lists combined.
// It short-circuits on the first sufficient match; this is a membership
// test, not a ranking score. The general (or empty) category always
// matches; an unknown category never does.
func (f *Filter) Matches(text, category string, minMatches int) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == General {
		return true
	}
	kw, ok := f.keywords[category]
	if !ok {
		return false
	}
	if minMatches < 1 {
		minMatches = 1
	}

	lower := strings.ToLower(text)
	found := 0
	for _, list := range [][]string{kw.English, kw.Spanish} {
		for _, k := range list {
			if strings.Contains(lower, strings.ToLower(k)) {
				found++
				if found >= minMatches {
					return true
				}
			}
		}
	}
	return false
}

// FilterByCategory keeps articles whose title+description matches the
// category. In strict mode a zero-match result stays empty; off-topic
// content is never mixed into a category-labeled feed. With strict=false
// a zero-match result falls back to the unfiltered input.
func (f *Filter) FilterByCategory(articles []types.RawArticle, category string, strict bool) []types.RawArticle {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" || cat == General {
		return articles
	}

	out := make([]types.RawArticle, 0, len(articles))
	for _, a := range articles {
		if f.Matches(a.Title+" "+a.Description, cat, 1) {
			out = append(out, a)
		}
	}
	if len(out) == 0 && !strict {
		return articles
	}
	return out
}
