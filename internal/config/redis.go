package config

// Redis backs the response cache and the rate limiter, nothing else.
// Both degrade to pass-through when the client is nil, so a missing or
// unreachable Redis downgrades the service instead of breaking it.

import (
    "context"
    "os"
    "strconv"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient connects using REDIS_ADDR (host:port, default
// localhost:6379) with optional REDIS_PASSWORD and REDIS_DB.  A failed
// ping returns nil; callers treat that as "no cache, no rate limit".
func NewRedisClient() *redis.Client {
    addr := getenv("REDIS_ADDR", "localhost:6379")

    dbNum := 0
    if s := os.Getenv("REDIS_DB"); s != "" {
        if n, err := strconv.Atoi(s); err == nil {
            dbNum = n
        }
    }

    client := redis.NewClient(&redis.Options{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       dbNum,
    })

    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
