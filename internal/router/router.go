package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/ryochana/toh-jeen-npc-68v5/internal/handler"    // handlers implementing the board, booking and layout logic
    "github.com/ryochana/toh-jeen-npc-68v5/internal/middleware" // session authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Load balancers and uptime monitors hit this endpoint.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the admin login endpoint.  There is a single
// shared password and a single role; logout is client-side (drop the
// token), so no logout route exists.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
    g := e.Group("/v1/auth")
    g.POST("/login", a.Login)
}

// RegisterPublic registers the visitor-facing read endpoints.  These
// carry no auth; everyone sees the same board.  The extra middleware
// (response cache, rate limit) is applied here so the admin write path
// is never cached.
func RegisterPublic(e *echo.Echo, b *handler.BoardHandler, ex *handler.ExportHandler, mws ...echo.MiddlewareFunc) {
    g := e.Group("/v1", mws...)
    // Projected floor plan: tables joined with bookings, plus tallies.
    g.GET("/board", b.GetBoard)
    // Sorted booking list; ?sort=payment_status|table_number|payment_date|booking_date.
    g.GET("/bookings", b.ListBookings)
    // Single projected table row.
    g.GET("/tables/:id", b.GetTable)
    // Live layout positions and the grid pitch.
    g.GET("/layout", b.GetLayout)
    // CSV download of the current snapshot.
    g.GET("/export.csv", ex.ExportCSV)
}

// RegisterAdmin registers the write endpoints behind the session gate.
// Every route in this group requires a valid token with the ADMIN role.
func RegisterAdmin(e *echo.Echo, bk *handler.AdminBookingHandler, lay *handler.LayoutHandler, jwtSecret string) {
    g := e.Group("/v1")
    g.Use(middleware.SessionAuth(jwtSecret))
    g.Use(middleware.RequireRole("ADMIN"))

    // Booking CRUD against the external store.
    g.POST("/bookings", bk.Create)
    g.PUT("/bookings/:order", bk.Update)
    g.DELETE("/bookings/:order", bk.Delete)

    // Force one snapshot reload without waiting for the poller.
    g.POST("/refresh", bk.Refresh)

    // Layout manipulation: drag with displacement, and full reset.
    g.POST("/layout/move", lay.Move)
    g.POST("/layout/reset", lay.Reset)
}
