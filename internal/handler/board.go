package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/board"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/floorplan"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/store"
)

// BoardHandler serves the read-only views: the projected floor plan,
// the booking list and the raw layout.  Everything is computed from
// the snapshot on each request; visitors and admins see the same data.
type BoardHandler struct {
    Snap   *store.Snapshot
    Engine *floorplan.Engine
}

func NewBoardHandler(snap *store.Snapshot, engine *floorplan.Engine) *BoardHandler {
    return &BoardHandler{Snap: snap, Engine: engine}
}

// GetBoard handles GET /v1/board.  It joins the registry with the
// booking snapshot, overlays live positions, and adds the tallies and
// the next free order number for create forms.
func (h *BoardHandler) GetBoard(c echo.Context) error {
    bookings := h.Snap.Bookings()
    tables := floorplan.Generate()

    positions := h.Engine.Positions()
    for i := range tables {
        if p, ok := positions[tables[i].Number]; ok {
            tables[i].Position = p
        }
    }

    rows := board.Project(tables, bookings)
    return c.JSON(http.StatusOK, echo.Map{
        "rows":              rows,
        "tally":             board.Count(rows),
        "next_order_number": board.NextOrderNumber(bookings),
        "loaded_at":         h.Snap.LoadedAt(),
    })
}

// ListBookings handles GET /v1/bookings?sort=.  Rows without a guest
// name never reach the snapshot, so the list is served as-is after
// sorting.
func (h *BoardHandler) ListBookings(c echo.Context) error {
    key := board.ParseSortKey(c.QueryParam("sort"))
    bookings := board.SortBookings(h.Snap.Bookings(), key)
    return c.JSON(http.StatusOK, echo.Map{
        "sort":  string(key),
        "count": len(bookings),
        "items": bookings,
    })
}

// GetTable handles GET /v1/tables/:id and returns one projected row.
func (h *BoardHandler) GetTable(c echo.Context) error {
    id, err := strconv.Atoi(c.Param("id"))
    if err != nil || id < 1 || id > floorplan.OutsideMax {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table number"})
    }

    tables := floorplan.Generate()
    if p, ok := h.Engine.Positions()[id]; ok {
        tables[id-1].Position = p
    }
    rows := board.Project(tables, h.Snap.Bookings())
    return c.JSON(http.StatusOK, rows[id-1])
}

// GetLayout handles GET /v1/layout and returns the live position map.
func (h *BoardHandler) GetLayout(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "grid":      echo.Map{"width": floorplan.CellWidth, "height": floorplan.CellHeight},
        "positions": h.Engine.Positions(),
    })
}

// zoneLabel renders the zone name shown to people.
func zoneLabel(z model.Zone) string {
    if z == model.ZoneInside {
        return "ด้านในหอประชุม"
    }
    return "ด้านนอกหอประชุม"
}
