package board

import (
    "sort"
    "time"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

// SortKey selects the booking list ordering.
type SortKey string

const (
    SortByPaymentStatus SortKey = "payment_status"
    SortByTableNumber   SortKey = "table_number"
    SortByPaymentDate   SortKey = "payment_date"
    SortByBookingDate   SortKey = "booking_date"
)

// ParseSortKey maps a query-string value onto a key, defaulting to the
// payment-status ordering the board opens with.
func ParseSortKey(s string) SortKey {
    switch SortKey(s) {
    case SortByTableNumber, SortByPaymentDate, SortByBookingDate:
        return SortKey(s)
    default:
        return SortByPaymentStatus
    }
}

// SortBookings orders a copy of the booking list by the given key.
//
// Tie-breaks: payment-status puts paid rows first, then ascending order
// number; payment-date puts dated rows first, most recent leading;
// table-number compares the first table id of each booking, ascending;
// booking-date is most recent first with order number as tie-break.
func SortBookings(bookings []model.Booking, key SortKey) []model.Booking {
    out := make([]model.Booking, len(bookings))
    copy(out, bookings)

    switch key {
    case SortByTableNumber:
        sort.SliceStable(out, func(i, j int) bool {
            a, b := firstTableOrMax(out[i]), firstTableOrMax(out[j])
            if a != b {
                return a < b
            }
            return out[i].OrderNumber < out[j].OrderNumber
        })
    case SortByPaymentDate:
        sort.SliceStable(out, func(i, j int) bool {
            ti, okI := parsePaymentDate(out[i].PaymentDate)
            tj, okJ := parsePaymentDate(out[j].PaymentDate)
            if okI != okJ {
                return okI // dated rows before undated
            }
            if okI && !ti.Equal(tj) {
                return ti.After(tj) // most recent first
            }
            return out[i].OrderNumber < out[j].OrderNumber
        })
    case SortByBookingDate:
        sort.SliceStable(out, func(i, j int) bool {
            if !out[i].BookingDate.Equal(out[j].BookingDate) {
                return out[i].BookingDate.After(out[j].BookingDate)
            }
            return out[i].OrderNumber < out[j].OrderNumber
        })
    default: // payment status
        sort.SliceStable(out, func(i, j int) bool {
            pi := out[i].State() == model.PaymentPaid
            pj := out[j].State() == model.PaymentPaid
            if pi != pj {
                return pi // paid before booked
            }
            return out[i].OrderNumber < out[j].OrderNumber
        })
    }
    return out
}

// firstTableOrMax sorts bookings without a table assignment to the end.
func firstTableOrMax(b model.Booking) int {
    if n := b.FirstTable(); n > 0 {
        return n
    }
    return 999
}

// paymentDateLayouts are the formats seen in the payment-date column.
// The sheet stores free text, so parsing is best effort; unparseable
// values sort as undated.
var paymentDateLayouts = []string{
    time.RFC3339,
    "2006-01-02 15:04:05",
    "2006-01-02",
    "02/01/2006 15:04",
    "02/01/2006",
}

func parsePaymentDate(s string) (time.Time, bool) {
    if s == "" {
        return time.Time{}, false
    }
    for _, layout := range paymentDateLayouts {
        if t, err := time.Parse(layout, s); err == nil {
            return t, true
        }
    }
    return time.Time{}, false
}
