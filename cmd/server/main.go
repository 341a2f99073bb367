package main // Entry point package

import (
    "context"
    "log"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/config"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/database"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/floorplan"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/handler"
    appmw "github.com/ryochana/toh-jeen-npc-68v5/internal/middleware"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/poller"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/queue"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/repository"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/router"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/sheet"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/store"
)

func main() {
    _ = godotenv.Load() // .env is optional; real deployments set env directly
    cfg := config.Load()

    // Booking store: spreadsheet or relational, selected by config.
    var src store.Source
    switch cfg.StoreBackend {
    case config.BackendMySQL:
        db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
        if err != nil {
            log.Fatalf("mysql: %v", err)
        }
        defer db.Close()
        src = repository.NewBookingRepo(db)
    default:
        src = sheet.New(cfg.SheetCSVURL, cfg.SheetWebhookURL)
    }

    snap := store.NewSnapshot()
    bound := store.Bound{Snap: snap, Src: src}
    engine := floorplan.NewEngine()
    publisher := queue.NewPublisher(cfg.RabbitURL)

    // First load before serving; a cold store is not fatal, the poller
    // retries on its own schedule.
    loadCtx, cancelLoad := context.WithTimeout(context.Background(), 20*time.Second)
    if err := bound.Reload(loadCtx); err != nil {
        log.Printf("initial load failed, serving empty board: %v", err)
    }
    cancelLoad()

    pollCtx, stopPoll := context.WithCancel(context.Background())
    defer stopPoll()
    go poller.New(bound, cfg.RefreshInterval).Run(pollCtx)

    e := echo.New()
    e.HideBanner = true
    e.Use(echomw.Recover())
    e.Use(echomw.Logger())
    e.Use(echomw.CORS())

    // Redis is optional; without it the public routes just skip the
    // response cache and rate limit.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable, cache and rate limit disabled")
    }
    cacheCfg := config.LoadCacheConfig()
    publicMW := []echo.MiddlewareFunc{
        appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
        appmw.NewBoardCache(cacheCfg, rdb),
    }
    bustCache := appmw.NewCacheBuster(cacheCfg, rdb)

    authH := handler.NewAuthHandler(cfg)
    boardH := handler.NewBoardHandler(snap, engine)
    exportH := handler.NewExportHandler(snap)
    bookingH := handler.NewAdminBookingHandler(src, bound, publisher, bustCache)
    layoutH := handler.NewLayoutHandler(engine, bustCache)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH)
    router.RegisterPublic(e, boardH, exportH, publicMW...)
    router.RegisterAdmin(e, bookingH, layoutH, cfg.JWTSecret)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s backend=%s)", addr, cfg.Env, cfg.StoreBackend)

    go func() {
        if err := e.Start(addr); err != nil {
            log.Printf("server stopped: %v", err)
        }
    }()

    // Graceful shutdown on SIGINT/SIGTERM: stop the poller, then drain
    // in-flight requests.
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
    <-quit
    stopPoll()

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := e.Shutdown(shutdownCtx); err != nil {
        log.Fatalf("shutdown: %v", err)
    }
}
