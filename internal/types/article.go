package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SlugLength is the number of hex characters kept from the URL hash.
const SlugLength = 24

// RawArticle is the loose, producer-side shape every scraper emits.
// Field presence varies per source; the normalizer decides what survives.
type RawArticle struct {
	Title       string
	Description string
	URL         string
	Source      string
	Image       string
	PublishedAt time.Time
}

// Article is the canonical, normalized article shape consumed by callers.
type Article struct {
	// Slug is the stable per-URL identifier and the dedup key.
	Slug string `bson:"slug" json:"slug"`

	// Title is trimmed with internal whitespace collapsed. Never empty.
	Title string `bson:"title" json:"title"`

	// Summary is an HTML-stripped plain-text teaser, at most 180 characters.
	Summary string `bson:"summary" json:"summary"`

	// URL is the absolute link to the original story. Never empty.
	URL string `bson:"url" json:"url"`

	// Source is the display name, derived from the hostname when the
	// scraper did not set one.
	Source string `bson:"source" json:"source"`

	// Image is an absolute URL, or empty when the source had none.
	Image string `bson:"image,omitempty" json:"image,omitempty"`

	PublishedAt time.Time `bson:"publishedAt" json:"publishedAt"`
}

// Snapshot is the persisted landing feed singleton: the aggregated and
// deduplicated article list plus its generation timestamp. The store keeps
// exactly one current snapshot; a refresh overwrites it in place.
type Snapshot struct {
	GeneratedAt time.Time `bson:"generatedAt" json:"generatedAt"`
	Articles    []Article `bson:"articles" json:"articles"`
}

// Age returns how old the snapshot is relative to now.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.GeneratedAt)
}

// Slug derives the stable identifier for a URL. Same URL, same slug,
// across calls and process restarts.
func Slug(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:SlugLength]
}
