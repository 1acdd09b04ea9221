package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from file and environment.
// Priority (highest to lowest): env vars > config file > defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v, cfg)

	// Environment variable support, e.g. KIOSCO_STORE_MONGO_URI
	v.SetEnvPrefix("KIOSCO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("kiosco")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".kiosco"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if not explicitly specified
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// API keys also come from the plain environment for .env compatibility.
	if cfg.Sources.NewsDataKey == "" {
		cfg.Sources.NewsDataKey = os.Getenv("NEWSDATA_API_KEY")
	}
	if cfg.Sources.NewsAPIKey == "" {
		cfg.Sources.NewsAPIKey = os.Getenv("NEWSAPI_KEY")
	}

	return cfg, nil
}

// setDefaults registers default values in viper.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("fetch.timeout", cfg.Fetch.Timeout)
	v.SetDefault("fetch.user_agent", cfg.Fetch.UserAgent)
	v.SetDefault("fetch.max_body_size", cfg.Fetch.MaxBodySize)

	v.SetDefault("snapshot.ttl", cfg.Snapshot.TTL)
	v.SetDefault("snapshot.max_articles", cfg.Snapshot.MaxArticles)
	v.SetDefault("snapshot.blocked_hosts", cfg.Snapshot.BlockedHosts)

	v.SetDefault("store.type", cfg.Store.Type)
	v.SetDefault("store.mongo.uri", cfg.Store.Mongo.URI)
	v.SetDefault("store.mongo.database", cfg.Store.Mongo.Database)
	v.SetDefault("store.mongo.collection", cfg.Store.Mongo.Collection)
	v.SetDefault("store.redis.addr", cfg.Store.Redis.Addr)
	v.SetDefault("store.redis.db", cfg.Store.Redis.DB)
	v.SetDefault("store.redis.key", cfg.Store.Redis.Key)

	v.SetDefault("api.port", cfg.API.Port)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}
