package config

import "time"

// RateLimitConfig tunes the token bucket in front of the public board
// endpoints.  Buckets are keyed per client IP, session role and route;
// there is no strategy knob because the board has exactly two kinds of
// caller, anonymous visitors and the one shared admin.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    Prefix         string
    Debug          bool
}

// LoadRateLimitConfig reads the limiter settings from the environment.
// The defaults are sized for the board's traffic shape: browsers
// re-poll every 30 seconds, so a burst of 30 with one token per second
// covers a page load plus polling with plenty of headroom.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
        Capacity:       atoiOr("RATE_LIMIT_CAPACITY", 30),
        RefillTokens:   atoiOr("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "1s")),
        TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
        Prefix:         getenv("RATE_LIMIT_PREFIX", "board-rl"),
        Debug:          getenv("RATE_LIMIT_DEBUG", "false") == "true",
    }
    if cfg.Capacity < 1 {
        cfg.Capacity = 1
    }
    if cfg.RefillTokens < 1 {
        cfg.RefillTokens = 1
    }
    if cfg.RefillInterval <= 0 {
        cfg.RefillInterval = time.Second
    }
    // Idle buckets must survive several refill cycles or a slow client
    // would always see a full bucket.
    if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
        cfg.TTL = minTTL
    }
    return cfg
}

func atoiOr(key string, def int) int {
    if v := getenv(key, ""); v != "" {
        if n := atoi(v); n != 0 {
            return n
        }
    }
    return def
}
