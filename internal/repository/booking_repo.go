package repository // repository defines data access for table bookings

import (
    "context"      // context allows query cancellation and timeouts
    "database/sql" // sql provides DB primitives
    "errors"
    "time"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/floorplan"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

// ErrBookingNotFound is returned when an update or delete matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo is the relational booking store.  The schema keeps one
// row per table, keyed by table_number, exactly as the hosted table
// does: a booking spanning several tables is stored as several rows,
// and the order number surfaced to the rest of the service is the
// table number itself.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
    return &BookingRepo{db: db}
}

// List retrieves all booking rows ordered by table number.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT table_number, guest_name, phone_number, party_size, booking_date, payment_status, notes, zone
	           FROM table_bookings
	           ORDER BY table_number`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var result []model.Booking
    for rows.Next() {
        var (
            tableNumber int
            b           model.Booking
            bookingDate time.Time
            notes       sql.NullString
            zone        string
        )
        if err := rows.Scan(
            &tableNumber, &b.GuestName, &b.PhoneNumber, &b.PartySize,
            &bookingDate, &b.RawStatus, &notes, &zone,
        ); err != nil {
            return nil, err
        }
        b.OrderNumber = tableNumber
        b.TableNumbers = []int{tableNumber}
        b.BookingDate = bookingDate
        b.Notes = notes.String
        _ = zone // derivable from the table number; kept in the schema for exports
        result = append(result, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}

// Create inserts one row per table of the booking.  The returned
// booking carries the first table number as its order number.
func (r *BookingRepo) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
    const q = `INSERT INTO table_bookings (table_number, guest_name, phone_number, party_size, booking_date, payment_status, notes, zone)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
    when := b.BookingDate
    if when.IsZero() {
        when = time.Now().UTC()
    }
    for _, n := range b.TableNumbers {
        if _, err := r.db.ExecContext(ctx, q,
            n, b.GuestName, b.PhoneNumber, b.PartySize,
            when, string(model.PaymentStateOf(b.RawStatus)), b.Notes, string(floorplan.ZoneOf(n)),
        ); err != nil {
            return model.Booking{}, err
        }
    }
    b.BookingDate = when
    b.OrderNumber = b.FirstTable()
    return b, nil
}

// Update rewrites one row by table number.
func (r *BookingRepo) Update(ctx context.Context, tableNumber int, b model.Booking) error {
    const q = `UPDATE table_bookings
	           SET guest_name = ?, phone_number = ?, party_size = ?, payment_status = ?, notes = ?
	           WHERE table_number = ?`
    res, err := r.db.ExecContext(ctx, q,
        b.GuestName, b.PhoneNumber, b.PartySize,
        string(model.PaymentStateOf(b.RawStatus)), b.Notes, tableNumber,
    )
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrBookingNotFound
    }
    return nil
}

// Delete removes one row by table number.
func (r *BookingRepo) Delete(ctx context.Context, tableNumber int) error {
    const q = `DELETE FROM table_bookings WHERE table_number = ?`
    res, err := r.db.ExecContext(ctx, q, tableNumber)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrBookingNotFound
    }
    return nil
}
