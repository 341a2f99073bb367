package middleware

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/config"
)

func boardCfg() config.CacheConfig {
    return config.CacheConfig{Enabled: true, TTL: 10 * time.Second, Prefix: "board"}
}

func TestBoardCachePassThroughWithoutRedis(t *testing.T) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/board", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    h := NewBoardCache(boardCfg(), nil)(func(c echo.Context) error {
        return c.String(http.StatusOK, "live")
    })
    require.NoError(t, h(c))

    assert.Equal(t, "live", rec.Body.String())
    assert.Empty(t, rec.Header().Get("X-Cache"), "no cache headers without redis")
}

func TestBoardCachePassThroughWhenDisabled(t *testing.T) {
    cfg := boardCfg()
    cfg.Enabled = false

    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/board", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    h := NewBoardCache(cfg, nil)(func(c echo.Context) error {
        return c.NoContent(http.StatusOK)
    })
    require.NoError(t, h(c))
    assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestBoardCacheKeyVariesByQuery(t *testing.T) {
    e := echo.New()
    keyFor := func(target string) string {
        req := httptest.NewRequest(http.MethodGet, target, nil)
        c := e.NewContext(req, httptest.NewRecorder())
        c.SetPath("/v1/bookings")
        return boardCacheKey("board", c)
    }

    // The four sort orders must cache separately.
    assert.NotEqual(t, keyFor("/v1/bookings?sort=table_number"), keyFor("/v1/bookings?sort=payment_date"))
    assert.Equal(t, keyFor("/v1/bookings?sort=table_number"), keyFor("/v1/bookings?sort=table_number"))
}

func TestCacheEntryRoundTrip(t *testing.T) {
    hdr := http.Header{"Content-Type": {"text/csv; charset=utf-8"}}
    entry, err := encodeEntry(http.StatusOK, hdr, []byte("a,b,c"))
    require.NoError(t, err)

    status, gotHdr, body, ok := decodeEntry(entry)
    require.True(t, ok)
    assert.Equal(t, http.StatusOK, status)
    assert.Equal(t, "text/csv; charset=utf-8", gotHdr.Get("Content-Type"))
    assert.Equal(t, "a,b,c", string(body))

    _, _, _, ok = decodeEntry([]byte("short"))
    assert.False(t, ok)
}

func TestCacheBusterWithoutRedisIsNoop(t *testing.T) {
    bust := NewCacheBuster(boardCfg(), nil)
    assert.NotPanics(t, func() { bust(context.Background()) })
}
