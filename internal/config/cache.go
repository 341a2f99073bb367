package config

import (
    "os"
    "strconv"
    "time"
)

// CacheConfig tunes the response cache in front of the public board
// endpoints.  The cache only ever covers GET requests keyed by route
// and query string, so there is nothing to configure beyond lifetime
// and size.  The TTL default is short on purpose: the snapshot itself
// refreshes on a 30-second poll, and admin writes bust the cache
// directly, so entries only need to outlive a burst of page loads.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads the cache settings from the environment,
// falling back to defaults sized for the board.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        TTL:          parseDur(getenv("CACHE_TTL", "10s")),
        Prefix:       getenv("CACHE_PREFIX", "board"),
        MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
    }
}

// Shared env helpers used across the config package.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func atoi(s string) int {
    i, _ := strconv.Atoi(s)
    return i
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
