package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for kiosco.
type Config struct {
	Fetch      FetchConfig               `mapstructure:"fetch"      yaml:"fetch"`
	Snapshot   SnapshotConfig            `mapstructure:"snapshot"   yaml:"snapshot"`
	Sources    SourcesConfig             `mapstructure:"sources"    yaml:"sources"`
	Store      StoreConfig               `mapstructure:"store"      yaml:"store"`
	API        APIConfig                 `mapstructure:"api"        yaml:"api"`
	Logging    LoggingConfig             `mapstructure:"logging"    yaml:"logging"`
	Categories map[string]CategoryConfig `mapstructure:"categories" yaml:"categories"`
}

// FetchConfig controls outbound HTTP requests made by scrapers.
type FetchConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"       yaml:"timeout"`
	UserAgent   string        `mapstructure:"user_agent"    yaml:"user_agent"`
	MaxBodySize int64         `mapstructure:"max_body_size" yaml:"max_body_size"`
}

// SnapshotConfig controls the landing snapshot lifecycle.
type SnapshotConfig struct {
	// TTL is how long a snapshot is served before a read triggers a refresh.
	TTL time.Duration `mapstructure:"ttl" yaml:"ttl"`

	// MaxArticles caps the article list per snapshot.
	MaxArticles int `mapstructure:"max_articles" yaml:"max_articles"`

	// BlockedHosts lists hostnames (www-stripped) excluded from the
	// landing feed regardless of content.
	BlockedHosts []string `mapstructure:"blocked_hosts" yaml:"blocked_hosts"`
}

// SourcesConfig holds per-source API credentials. A source with a missing
// key contributes nothing instead of failing the aggregation.
type SourcesConfig struct {
	NewsDataKey string `mapstructure:"newsdata_key" yaml:"newsdata_key"`
	NewsAPIKey  string `mapstructure:"newsapi_key"  yaml:"newsapi_key"`
}

// StoreConfig selects and configures the snapshot store backend.
type StoreConfig struct {
	Type  string      `mapstructure:"type"  yaml:"type"` // mongo, redis, memory
	Mongo MongoConfig `mapstructure:"mongo" yaml:"mongo"`
	Redis RedisConfig `mapstructure:"redis" yaml:"redis"`
}

// MongoConfig configures the MongoDB snapshot store.
type MongoConfig struct {
	URI        string `mapstructure:"uri"        yaml:"uri"`
	Database   string `mapstructure:"database"   yaml:"database"`
	Collection string `mapstructure:"collection" yaml:"collection"`
}

// RedisConfig configures the Redis snapshot store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"     yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db"       yaml:"db"`
	Key      string `mapstructure:"key"      yaml:"key"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Port int `mapstructure:"port" yaml:"port"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CategoryConfig overrides the built-in keyword lists for one category.
// Empty lists fall back to the defaults.
type CategoryConfig struct {
	English []string `mapstructure:"english" yaml:"english"`
	Spanish []string `mapstructure:"spanish" yaml:"spanish"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			Timeout:     12 * time.Second,
			UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			MaxBodySize: 5 * 1024 * 1024, // 5MB
		},
		Snapshot: SnapshotConfig{
			TTL:         6 * time.Hour,
			MaxArticles: 9,
			BlockedHosts: []string{
				"news.google.com",
				"msn.com",
				"flipboard.com",
			},
		},
		Store: StoreConfig{
			Type: "mongo",
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "kiosco",
				Collection: "landing_news",
			},
			Redis: RedisConfig{
				Addr: "localhost:6379",
				Key:  "kiosco:landing",
			},
		},
		API: APIConfig{
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
