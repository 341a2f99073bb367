package sheet

import (
    "encoding/csv"
    "io"
    "strconv"
    "strings"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

// Fixed column order of the sheet.  No header validation beyond
// skipping the first row.
const (
    colOrder = iota
    colGuestName
    colPartySize
    colPaymentStatus
    colTableNumbers
    colReceiver
    colPaymentDate
    colPhoneNumber
)

// Parse reads the CSV export into bookings.  Quoted fields may contain
// the delimiter; rows with no guest name are dropped, matching the
// sheet's habit of keeping numbered blank rows.
func Parse(r io.Reader) ([]model.Booking, error) {
    reader := csv.NewReader(r)
    reader.FieldsPerRecord = -1 // the sheet trims trailing empty cells

    records, err := reader.ReadAll()
    if err != nil {
        return nil, err
    }
    if len(records) <= 1 {
        return nil, nil
    }

    bookings := make([]model.Booking, 0, len(records)-1)
    for _, rec := range records[1:] { // skip header
        b := rowToBooking(rec)
        if b.GuestName == "" {
            continue
        }
        bookings = append(bookings, b)
    }
    return bookings, nil
}

func rowToBooking(rec []string) model.Booking {
    return model.Booking{
        OrderNumber:  atoiCell(cell(rec, colOrder)),
        GuestName:    cell(rec, colGuestName),
        PartySize:    partySize(cell(rec, colPartySize)),
        RawStatus:    cell(rec, colPaymentStatus),
        TableNumbers: model.ParseTableNumbers(cell(rec, colTableNumbers)),
        Receiver:     cell(rec, colReceiver),
        PaymentDate:  cell(rec, colPaymentDate),
        PhoneNumber:  cell(rec, colPhoneNumber),
    }
}

func cell(rec []string, i int) string {
    if i >= len(rec) {
        return ""
    }
    return strings.TrimSpace(rec[i])
}

func atoiCell(s string) int {
    n, _ := strconv.Atoi(s)
    return n
}

// partySize defaults to 1 when the cell is blank or non-numeric, the
// same fallback the board always used.
func partySize(s string) int {
    if n, err := strconv.Atoi(s); err == nil && n > 0 {
        return n
    }
    return 1
}
