package floorplan

import (
    "math"
    "sync"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

// Engine holds the live position of every table.  Positions start at
// the registry defaults and change only through ProposeMove and
// ResetAll.  The state is local to this process and never persisted;
// booking data is untouched by the engine.
//
// Handlers run concurrently, so the map is guarded by a mutex.
type Engine struct {
    mu  sync.Mutex
    pos map[int]model.Position
}

// NewEngine seeds an engine from the registry defaults.
func NewEngine() *Engine {
    e := &Engine{pos: make(map[int]model.Position, OutsideMax)}
    for _, t := range Generate() {
        e.pos[t.Number] = t.Default
    }
    return e
}

// Snap rounds a position to the nearest cell of the zone's grid.  The
// grid is anchored at the zone origin, which makes every registry
// default a fixed point: Snap(Snap(p)) == Snap(p) for any p.
func Snap(z model.Zone, p model.Position) model.Position {
    o := Origin(z)
    return model.Position{
        X: o.X + snapAxis(p.X-o.X, CellWidth),
        Y: o.Y + snapAxis(p.Y-o.Y, CellHeight),
    }
}

func snapAxis(v, pitch int) int {
    return int(math.Round(float64(v)/float64(pitch))) * pitch
}

// Positions returns a copy of the current position map.
func (e *Engine) Positions() map[int]model.Position {
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.copyLocked()
}

// ProposeMove moves a table by a pointer delta, snaps it to the grid
// and pushes aside every table it would overlap.  The full updated
// position map is returned; an unknown table number is a no-op.
//
// Collision resolution is single-pass: only overlaps caused directly
// by the moving table are resolved, in ascending table-number order.
// A pushed table may in turn overlap a third one; that is left as-is,
// matching the documented behavior of the board.
func (e *Engine) ProposeMove(number, dx, dy int) map[int]model.Position {
    e.mu.Lock()
    defer e.mu.Unlock()

    cur, ok := e.pos[number]
    if !ok {
        return e.copyLocked()
    }

    target := Snap(ZoneOf(number), model.Position{X: cur.X + dx, Y: cur.Y + dy})
    e.pos[number] = target

    for n := 1; n <= OutsideMax; n++ {
        if n == number {
            continue
        }
        other, ok := e.pos[n]
        if !ok {
            continue
        }
        dxAbs := abs(target.X - other.X)
        dyAbs := abs(target.Y - other.Y)
        // Bounding-box overlap: both axis deltas strictly inside the
        // footprint.  The buffer applies to the push distance only.
        if dxAbs >= TableWidth || dyAbs >= TableHeight {
            continue
        }
        pushX := 1
        if target.X > other.X {
            pushX = -1
        }
        pushY := 1
        if target.Y > other.Y {
            pushY = -1
        }
        pushed := model.Position{
            X: other.X + pushX*(TableWidth+PushBuffer),
            Y: other.Y + pushY*(TableHeight+PushBuffer),
        }
        e.pos[n] = Snap(ZoneOf(n), pushed)
    }
    return e.copyLocked()
}

// ResetAll discards every manual placement and restores the registry
// defaults.  Booking associations are keyed by table number, so they
// survive a reset untouched.
func (e *Engine) ResetAll() map[int]model.Position {
    e.mu.Lock()
    defer e.mu.Unlock()
    for n := 1; n <= OutsideMax; n++ {
        e.pos[n] = DefaultPosition(n)
    }
    return e.copyLocked()
}

func (e *Engine) copyLocked() map[int]model.Position {
    out := make(map[int]model.Position, len(e.pos))
    for k, v := range e.pos {
        out[k] = v
    }
    return out
}

func abs(v int) int {
    if v < 0 {
        return -v
    }
    return v
}
