// Package floorplan owns the static table registry and the live layout
// of tables on the floor-plan canvas.  Everything here is plain
// arithmetic over in-memory state; there are no error paths.
package floorplan

import "github.com/ryochana/toh-jeen-npc-68v5/internal/model"

// Layout constants.  The id range is split into two zones, each laid
// out row-major on its own fixed-column grid.  The cell pitch doubles
// as the snap grid of the layout engine.
const (
    InsideMax  = 41 // ids 1..41 are zone inside
    OutsideMax = 65 // ids 42..65 are zone outside

    insideCols  = 7 // tables per row, inside zone
    outsideCols = 6 // tables per row, outside zone

    CellWidth  = 70 // grid pitch, x axis
    CellHeight = 80 // grid pitch, y axis

    insideOriginX  = 50  // left edge of the inside grid
    outsideOriginX = 600 // left edge of the outside grid
    originY        = 140 // top edge of both grids

    // Collision footprint of a table and the spacing margin applied
    // when a colliding table is pushed aside.
    TableWidth  = 70
    TableHeight = 80
    PushBuffer  = 15
)

// ZoneOf maps a table number to its zone.  Ids above InsideMax belong
// to the outside zone; ids outside the registry range still map by the
// same rule so the answer is total.
func ZoneOf(number int) model.Zone {
    if number <= InsideMax {
        return model.ZoneInside
    }
    return model.ZoneOutside
}

// Origin returns the grid origin of a zone.  Snapping is anchored
// here so that every default position is a fixed point of the snap.
func Origin(z model.Zone) model.Position {
    if z == model.ZoneInside {
        return model.Position{X: insideOriginX, Y: originY}
    }
    return model.Position{X: outsideOriginX, Y: originY}
}

// DefaultPosition computes the registry position of a table: row-major
// placement on the zone grid, counting from the first id of the zone.
func DefaultPosition(number int) model.Position {
    if number <= InsideMax {
        idx := number - 1
        return model.Position{
            X: (idx%insideCols)*CellWidth + insideOriginX,
            Y: (idx/insideCols)*CellHeight + originY,
        }
    }
    idx := number - InsideMax - 1
    return model.Position{
        X: (idx%outsideCols)*CellWidth + outsideOriginX,
        Y: (idx/outsideCols)*CellHeight + originY,
    }
}

// Generate builds the full table set in ascending id order.  The
// result is deterministic; row-major placement on distinct grids
// guarantees no two default positions coincide.
func Generate() []model.Table {
    tables := make([]model.Table, 0, OutsideMax)
    for n := 1; n <= OutsideMax; n++ {
        p := DefaultPosition(n)
        tables = append(tables, model.Table{
            Number:   n,
            Zone:     ZoneOf(n),
            Default:  p,
            Position: p,
        })
    }
    return tables
}
