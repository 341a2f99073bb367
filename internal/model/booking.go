package model

import (
    "strconv"
    "strings"
    "time"
)

// PaymentState classifies a booking as reserved-unpaid or reserved-paid.
type PaymentState string

const (
    PaymentBooked PaymentState = "booked" // reserved, not paid yet
    PaymentPaid   PaymentState = "paid"   // reserved and paid
)

// Booking is one reservation record as held by the external store.
// A booking may span several tables; the raw payment status is kept
// verbatim because the spreadsheet backend stores free text there.
//
// Fields:
//  OrderNumber  – sequence number assigned by the store, unique.
//  GuestName    – who booked (never empty for a valid record).
//  PhoneNumber  – free-form contact number.
//  PartySize    – total headcount across all tables of the booking.
//  TableNumbers – table ids covered by this booking.
//  RawStatus    – payment status exactly as stored (may be free text).
//  Receiver     – who received the payment, optional.
//  PaymentDate  – free-text payment timestamp, optional.
//  Notes        – free-text notes, optional.
//  BookingDate  – when the booking was created.
type Booking struct {
    OrderNumber  int       `json:"order_number"`
    GuestName    string    `json:"guest_name"`
    PhoneNumber  string    `json:"phone_number"`
    PartySize    int       `json:"party_size"`
    TableNumbers []int     `json:"table_numbers"`
    RawStatus    string    `json:"payment_status"`
    Receiver     string    `json:"receiver,omitempty"`
    PaymentDate  string    `json:"payment_date,omitempty"`
    Notes        string    `json:"notes,omitempty"`
    BookingDate  time.Time `json:"booking_date"`
}

// paidKeywords are the substrings that mark a raw status as paid.  The
// sheet is kept in Thai, so the Thai word comes first.
var paidKeywords = []string{"จ่าย", "paid"}

// PaymentStateOf derives the payment state from a raw status string.
// Unknown or empty statuses fail open to booked.
func PaymentStateOf(raw string) PaymentState {
    s := strings.ToLower(raw)
    for _, kw := range paidKeywords {
        if strings.Contains(s, kw) {
            return PaymentPaid
        }
    }
    return PaymentBooked
}

// State reports the derived payment state of the booking.
func (b Booking) State() PaymentState { return PaymentStateOf(b.RawStatus) }

// Covers reports whether the booking includes the given table number.
func (b Booking) Covers(table int) bool {
    for _, n := range b.TableNumbers {
        if n == table {
            return true
        }
    }
    return false
}

// FirstTable returns the lowest-indexed table number of the booking as
// listed, or 0 when the booking has no tables yet.  Used by the
// table-number sort.
func (b Booking) FirstTable() int {
    if len(b.TableNumbers) == 0 {
        return 0
    }
    return b.TableNumbers[0]
}

// ParseTableNumbers splits a comma-separated table list like "5, 6,7"
// into ids, dropping anything non-numeric or non-positive.
func ParseTableNumbers(s string) []int {
    parts := strings.Split(s, ",")
    nums := make([]int, 0, len(parts))
    for _, p := range parts {
        n, err := strconv.Atoi(strings.TrimSpace(p))
        if err != nil || n <= 0 {
            continue
        }
        nums = append(nums, n)
    }
    return nums
}

// JoinTableNumbers renders ids back to the comma-separated form used
// by the spreadsheet column.
func JoinTableNumbers(nums []int) string {
    parts := make([]string, len(nums))
    for i, n := range nums {
        parts[i] = strconv.Itoa(n)
    }
    return strings.Join(parts, ",")
}
