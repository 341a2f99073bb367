package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"
)

// Store backends selectable via STORE_BACKEND.
const (
    BackendSheet = "sheet" // shared spreadsheet, CSV export + webhook writes
    BackendMySQL = "mysql" // hosted relational table
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Backend-specific values are
// only required when that backend is selected.
type Config struct {
    Env  string // application environment (e.g. "dev", "prod")
    Port string // HTTP port to listen on

    StoreBackend string // "sheet" or "mysql"

    // MySQL backend.
    DBUser string
    DBPass string // optional
    DBHost string
    DBPort string
    DBName string

    // Spreadsheet backend.
    SheetCSVURL     string // full-sheet CSV export URL
    SheetWebhookURL string // Apps-Script webhook for writes (optional: read-only without it)

    // Admin gate.  When AdminPasswordHash is set it takes precedence
    // and the plain password is ignored.
    AdminPassword     string
    AdminPasswordHash string // bcrypt hash (optional)

    JWTSecret     string // secret used to sign session tokens
    SessionTTLMin int    // admin session time-to-live in minutes

    RefreshInterval time.Duration // booking snapshot poll interval

    RabbitURL string // AMQP broker for booking.changed events (optional)
}

// Load reads configuration from environment variables.  Missing
// required values cause a fatal log message, so a misconfigured
// deployment fails at startup instead of at first request.
func Load() Config {
    cfg := Config{
        Env:               getenv("APP_ENV", "dev"),
        Port:              must("APP_PORT"),
        StoreBackend:      getenv("STORE_BACKEND", BackendSheet),
        JWTSecret:         must("JWT_SECRET"),
        SessionTTLMin:     atoiDefault("SESSION_TTL_MIN", 720),
        AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
        AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
        RefreshInterval:   parseDur(getenv("REFRESH_INTERVAL", "30s")),
        RabbitURL:         os.Getenv("RABBITMQ_URL"),
    }

    switch cfg.StoreBackend {
    case BackendMySQL:
        cfg.DBUser = must("DB_USER")
        cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
        cfg.DBHost = must("DB_HOST")
        cfg.DBPort = must("DB_PORT")
        cfg.DBName = must("DB_NAME")
    case BackendSheet:
        cfg.SheetCSVURL = must("SHEET_CSV_URL")
        cfg.SheetWebhookURL = os.Getenv("SHEET_WEBHOOK_URL")
    default:
        log.Fatalf("unknown STORE_BACKEND: %q (want %q or %q)", cfg.StoreBackend, BackendSheet, BackendMySQL)
    }

    if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
        log.Fatal("missing required env var: ADMIN_PASSWORD (or ADMIN_PASSWORD_HASH)")
    }
    if cfg.RefreshInterval <= 0 {
        cfg.RefreshInterval = 30 * time.Second
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

func atoiDefault(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
