package handler

// Admin booking endpoints.  Validation happens before the store is
// touched; store failures surface their own message verbatim so the
// admin sees what the backend said.  Every successful write publishes
// a booking.changed event and refreshes the snapshot in the
// background, so the board converges without waiting for the poller.

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/board"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/queue"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/repository"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/store"
)

// AdminBookingHandler groups the write path dependencies.
type AdminBookingHandler struct {
    Store     store.Source
    Bound     store.Bound           // snapshot refresh after writes
    Publisher *queue.Publisher      // nil when no broker is configured
    bust      func(context.Context) // drops cached board responses
}

func NewAdminBookingHandler(src store.Source, bound store.Bound, pub *queue.Publisher, bust func(context.Context)) *AdminBookingHandler {
    if bust == nil {
        bust = func(context.Context) {}
    }
    return &AdminBookingHandler{Store: src, Bound: bound, Publisher: pub, bust: bust}
}

// ----- DTOs -----

type bookingReq struct {
    OrderNumber   int    `json:"order_number"`
    GuestName     string `json:"guest_name"`
    PhoneNumber   string `json:"phone_number"`
    PartySize     int    `json:"party_size"`
    TableNumbers  string `json:"table_numbers"` // comma-separated, as on the sheet
    PaymentStatus string `json:"payment_status"`
    Receiver      string `json:"receiver"`
    PaymentDate   string `json:"payment_date"`
    Notes         string `json:"notes"`
}

// validate applies the form rules: guest name and phone are required,
// party size must be positive.  Nothing is sent to the store when
// validation fails.
func (r *bookingReq) validate() (model.Booking, error) {
    r.GuestName = strings.TrimSpace(r.GuestName)
    r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
    if r.GuestName == "" {
        return model.Booking{}, errors.New("guest name is required")
    }
    if r.PhoneNumber == "" {
        return model.Booking{}, errors.New("phone number is required")
    }
    if r.PartySize == 0 {
        r.PartySize = 8 // default table seating
    }
    if r.PartySize < 0 {
        return model.Booking{}, errors.New("party size must be positive")
    }
    return model.Booking{
        OrderNumber:  r.OrderNumber,
        GuestName:    r.GuestName,
        PhoneNumber:  r.PhoneNumber,
        PartySize:    r.PartySize,
        TableNumbers: model.ParseTableNumbers(r.TableNumbers),
        RawStatus:    r.PaymentStatus,
        Receiver:     r.Receiver,
        PaymentDate:  r.PaymentDate,
        Notes:        r.Notes,
        BookingDate:  time.Now().UTC(),
    }, nil
}

// Create handles POST /v1/bookings.
func (h *AdminBookingHandler) Create(c echo.Context) error {
    var req bookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    b, err := req.validate()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    if b.OrderNumber <= 0 {
        // Order numbers are assigned client-side against the snapshot;
        // fill in the next free one when the form left it blank.
        b.OrderNumber = board.NextOrderNumber(h.Bound.Snap.Bookings())
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
    defer cancel()

    created, err := h.Store.Create(ctx, b)
    if err != nil {
        return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
    }
    h.bust(ctx)
    h.afterWrite("created", created)
    return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/bookings/:order.
func (h *AdminBookingHandler) Update(c echo.Context) error {
    order, err := strconv.Atoi(c.Param("order"))
    if err != nil || order <= 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order number"})
    }
    var req bookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    b, err := req.validate()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
    defer cancel()

    if err := h.Store.Update(ctx, order, b); err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
        }
        return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
    }
    b.OrderNumber = order
    h.bust(ctx)
    h.afterWrite("updated", b)
    return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /v1/bookings/:order.
func (h *AdminBookingHandler) Delete(c echo.Context) error {
    order, err := strconv.Atoi(c.Param("order"))
    if err != nil || order <= 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order number"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
    defer cancel()

    if err := h.Store.Delete(ctx, order); err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
        }
        return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
    }
    h.bust(ctx)
    h.afterWrite("deleted", model.Booking{OrderNumber: order})
    return c.NoContent(http.StatusNoContent)
}

// Refresh handles POST /v1/refresh and forces one snapshot reload.
func (h *AdminBookingHandler) Refresh(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
    defer cancel()

    if err := h.Bound.Reload(ctx); err != nil {
        return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
    }
    h.bust(ctx)
    return c.JSON(http.StatusOK, echo.Map{"loaded_at": h.Bound.Snap.LoadedAt()})
}

// afterWrite publishes the change event and refreshes the snapshot
// without holding up the response.  Failures here are logged only;
// the write itself already succeeded.
func (h *AdminBookingHandler) afterWrite(action string, b model.Booking) {
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()

        _ = h.Publisher.PublishBookingChanged(ctx, queue.BookingChangedEvent{
            Action:        action,
            OrderNumber:   b.OrderNumber,
            GuestName:     b.GuestName,
            TableNumbers:  b.TableNumbers,
            PaymentStatus: b.RawStatus,
        })
        if err := h.Bound.Reload(ctx); err != nil {
            log.Printf("booking %s: snapshot refresh failed: %v", action, err)
        }
    }()
}
