package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/floorplan"
)

// LayoutHandler exposes the admin layout operations: drag a table and
// reset the whole plan.  Both return the full position map so the
// client can redraw everything it was shown.  Layout changes alter the
// cached board view, so both operations bust the response cache.
type LayoutHandler struct {
    Engine *floorplan.Engine
    bust   func(context.Context)
}

func NewLayoutHandler(engine *floorplan.Engine, bust func(context.Context)) *LayoutHandler {
    if bust == nil {
        bust = func(context.Context) {}
    }
    return &LayoutHandler{Engine: engine, bust: bust}
}

type moveReq struct {
    TableNumber int `json:"table_number"`
    DX          int `json:"dx"`
    DY          int `json:"dy"`
}

// Move handles POST /v1/layout/move.  The delta is in pixels from the
// table's current position; the engine snaps and displaces.
func (h *LayoutHandler) Move(c echo.Context) error {
    var req moveReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.TableNumber < 1 || req.TableNumber > floorplan.OutsideMax {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table number"})
    }

    positions := h.Engine.ProposeMove(req.TableNumber, req.DX, req.DY)
    h.bust(c.Request().Context())
    return c.JSON(http.StatusOK, echo.Map{
        "moved":     req.TableNumber,
        "positions": positions,
    })
}

// Reset handles POST /v1/layout/reset and restores registry defaults.
func (h *LayoutHandler) Reset(c echo.Context) error {
    positions := h.Engine.ResetAll()
    h.bust(c.Request().Context())
    return c.JSON(http.StatusOK, echo.Map{
        "positions": positions,
    })
}
