// Package board joins the table registry with the booking snapshot
// into the renderable board: one row per table, each either empty or
// occupied by exactly one booking.  Projections are pure and are
// recomputed on every request, never stored.
package board

import "github.com/ryochana/toh-jeen-npc-68v5/internal/model"

// TableState is the tagged occupancy of a table: either empty or
// occupied by a booking.  Callers switch on Occupied() instead of
// probing optional fields.
type TableState struct {
    booking *model.Booking
}

// Empty is the state of a table no booking covers.
var Empty = TableState{}

// Occupied wraps the booking that owns a table.
func Occupied(b *model.Booking) TableState { return TableState{booking: b} }

// IsOccupied reports whether a booking owns the table.
func (s TableState) IsOccupied() bool { return s.booking != nil }

// Booking returns the owning booking, or nil for an empty table.
func (s TableState) Booking() *model.Booking { return s.booking }

// DisplayRow is one renderable entry of the board.
//
// PartyShare is the booking's party size divided over its tables by
// ceiling division, so shares may sum to more than the total.  Payment
// is derived from the raw status and fails open to booked.
type DisplayRow struct {
    Table      model.Table        `json:"table"`
    Booked     bool               `json:"is_booked"`
    Payment    model.PaymentState `json:"payment_state"`
    PartyShare int                `json:"party_share"`
    Booking    *model.Booking     `json:"booking,omitempty"`
}

// Project builds one DisplayRow per table, in table order.  The first
// booking in list order whose table set covers the table wins; a
// duplicate claim by a later booking is ignored silently.
func Project(tables []model.Table, bookings []model.Booking) []DisplayRow {
    rows := make([]DisplayRow, 0, len(tables))
    for _, t := range tables {
        state := Empty
        for i := range bookings {
            if bookings[i].Covers(t.Number) {
                state = Occupied(&bookings[i])
                break
            }
        }
        row := DisplayRow{Table: t, Payment: model.PaymentBooked}
        if state.IsOccupied() {
            b := state.Booking()
            row.Booked = true
            row.Payment = b.State()
            row.PartyShare = shareOf(b.PartySize, len(b.TableNumbers))
            row.Booking = b
        }
        rows = append(rows, row)
    }
    return rows
}

// shareOf spreads a party over n tables: ceil(total/n), every table
// getting the same share.
func shareOf(total, n int) int {
    if n <= 0 {
        return total
    }
    return (total + n - 1) / n
}

// Tally is the booked/paid/empty summary shown next to the board.
type Tally struct {
    Total  int `json:"total_tables"`
    Empty  int `json:"empty"`
    Booked int `json:"booked"`
    Paid   int `json:"paid"`
}

// Count tallies the projected rows.
func Count(rows []DisplayRow) Tally {
    t := Tally{Total: len(rows)}
    for _, r := range rows {
        switch {
        case !r.Booked:
            t.Empty++
        case r.Payment == model.PaymentPaid:
            t.Paid++
        default:
            t.Booked++
        }
    }
    return t
}

// NextOrderNumber returns max existing order number plus one, for
// prefilling a create form.
func NextOrderNumber(bookings []model.Booking) int {
    max := 0
    for _, b := range bookings {
        if b.OrderNumber > max {
            max = b.OrderNumber
        }
    }
    return max + 1
}
