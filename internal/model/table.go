package model

// Zone is the coarse partition of the table id space.  Each zone has
// its own default layout grid on the floor plan.
type Zone string

const (
    ZoneInside  Zone = "inside"  // โซนด้านใน, left half of the hall
    ZoneOutside Zone = "outside" // โซนด้านนอก, right half of the hall
)

// Position is a point on the floor-plan canvas in layout units.
type Position struct {
    X int `json:"x"`
    Y int `json:"y"`
}

// Table is one numbered banquet table on the floor plan.  The full
// table set is generated once at startup from the fixed id range; only
// the position ever changes, and only through the layout engine.
// Occupancy is derived from the booking snapshot, never stored.
//
// Fields:
//  Number   – table id, unique and stable for the event.
//  Zone     – inside or outside, fixed by the id partition.
//  Default  – registry-assigned grid position.
//  Position – current position on the canvas.
type Table struct {
    Number   int      `json:"table_number"`
    Zone     Zone     `json:"zone"`
    Default  Position `json:"default_position"`
    Position Position `json:"position"`
}
