package config

import (
	"fmt"
	"time"
)

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be > 0")
	}
	if cfg.Fetch.Timeout > time.Minute {
		return fmt.Errorf("fetch.timeout must be <= 1m, got %s", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.MaxBodySize <= 0 {
		return fmt.Errorf("fetch.max_body_size must be > 0")
	}

	if cfg.Snapshot.TTL <= 0 {
		return fmt.Errorf("snapshot.ttl must be > 0")
	}
	if cfg.Snapshot.MaxArticles < 1 {
		return fmt.Errorf("snapshot.max_articles must be >= 1, got %d", cfg.Snapshot.MaxArticles)
	}

	validStoreTypes := map[string]bool{
		"mongo": true, "redis": true, "memory": true,
	}
	if !validStoreTypes[cfg.Store.Type] {
		return fmt.Errorf("store.type %q is not supported (valid: mongo, redis, memory)", cfg.Store.Type)
	}
	if cfg.Store.Type == "mongo" && cfg.Store.Mongo.URI == "" {
		return fmt.Errorf("store.mongo.uri is required for the mongo store")
	}
	if cfg.Store.Type == "redis" && cfg.Store.Redis.Addr == "" {
		return fmt.Errorf("store.redis.addr is required for the redis store")
	}

	if cfg.API.Port < 1 || cfg.API.Port > 65535 {
		return fmt.Errorf("api.port must be 1-65535, got %d", cfg.API.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	return nil
}
