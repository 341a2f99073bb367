package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/floorplan"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

func TestLayoutMoveSnapsAndReturnsAll(t *testing.T) {
    h := NewLayoutHandler(floorplan.NewEngine(), nil)

    rec := doJSON(t, h.Move, http.MethodPost, "/v1/layout/move",
        `{"table_number":1,"dx":2,"dy":3}`)

    assert.Equal(t, http.StatusOK, rec.Code)
    var resp struct {
        Moved     int                    `json:"moved"`
        Positions map[int]model.Position `json:"positions"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, 1, resp.Moved)
    assert.Len(t, resp.Positions, floorplan.OutsideMax)
    // A 2,3 pixel nudge snaps back to the default cell.
    assert.Equal(t, floorplan.DefaultPosition(1), resp.Positions[1])
}

func TestLayoutMoveRejectsUnknownTable(t *testing.T) {
    h := NewLayoutHandler(floorplan.NewEngine(), nil)

    rec := doJSON(t, h.Move, http.MethodPost, "/v1/layout/move",
        `{"table_number":66,"dx":10,"dy":10}`)

    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLayoutChangesBustTheResponseCache(t *testing.T) {
    busted := 0
    h := NewLayoutHandler(floorplan.NewEngine(), func(context.Context) { busted++ })

    doJSON(t, h.Move, http.MethodPost, "/v1/layout/move", `{"table_number":1,"dx":70,"dy":0}`)
    assert.Equal(t, 1, busted)

    doJSON(t, h.Reset, http.MethodPost, "/v1/layout/reset", "")
    assert.Equal(t, 2, busted)
}

func TestLayoutResetRestoresDefaults(t *testing.T) {
    engine := floorplan.NewEngine()
    engine.ProposeMove(1, 140, 160)
    h := NewLayoutHandler(engine, nil)

    rec := doJSON(t, h.Reset, http.MethodPost, "/v1/layout/reset", "")

    assert.Equal(t, http.StatusOK, rec.Code)
    var resp struct {
        Positions map[int]model.Position `json:"positions"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    for n := 1; n <= floorplan.OutsideMax; n++ {
        assert.Equal(t, floorplan.DefaultPosition(n), resp.Positions[n])
    }
}
