package handler

import (
    "bytes"
    "encoding/csv"
    "fmt"
    "net/http"
    "net/url"
    "sort"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/floorplan"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/store"
)

// exportHeaders are the CSV column names, in Thai, matching what the
// organizers print and hand to the door staff.
var exportHeaders = []string{
    "หมายเลขโต๊ะ",   // table number
    "ชื่อผู้จอง",     // guest name
    "เบอร์โทรศัพท์", // phone number
    "จำนวนคน",       // party share for this table
    "วันที่จอง",      // booking date, Buddhist era
    "โซน",           // zone label
    "การชำระเงิน",   // payment label
    "หมายเหตุ",      // notes
}

// ExportHandler renders the current snapshot as a downloadable CSV.
type ExportHandler struct {
    Snap *store.Snapshot
}

func NewExportHandler(snap *store.Snapshot) *ExportHandler {
    return &ExportHandler{Snap: snap}
}

// ExportCSV handles GET /v1/export.csv.  One row per booked table,
// sorted by table number, UTF-8 with BOM so spreadsheet apps pick up
// the Thai text.  The response is marked uncacheable; the file name
// carries today's date.
func (h *ExportHandler) ExportCSV(c echo.Context) error {
    type line struct {
        table   int
        booking model.Booking
    }
    var lines []line
    for _, b := range h.Snap.Bookings() {
        for _, t := range b.TableNumbers {
            lines = append(lines, line{table: t, booking: b})
        }
    }
    sort.Slice(lines, func(i, j int) bool { return lines[i].table < lines[j].table })

    var buf bytes.Buffer
    buf.Write([]byte{0xEF, 0xBB, 0xBF}) // BOM, so Excel decodes UTF-8
    w := csv.NewWriter(&buf)
    if err := w.Write(exportHeaders); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
    }
    for _, l := range lines {
        b := l.booking
        row := []string{
            strconv.Itoa(l.table),
            b.GuestName,
            b.PhoneNumber,
            strconv.Itoa(shareFor(b)),
            thaiDate(b.BookingDate),
            zoneLabel(floorplan.ZoneOf(l.table)),
            paymentLabel(b.State()),
            b.Notes,
        }
        if err := w.Write(row); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
        }
    }
    w.Flush()
    if err := w.Error(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
    }

    name := fmt.Sprintf("รายการจองโต๊ะ-%s.csv", time.Now().Format("2006-01-02"))
    res := c.Response()
    res.Header().Set("Content-Disposition",
        "attachment; filename*=UTF-8''"+url.PathEscape(name))
    res.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
    res.Header().Set("Pragma", "no-cache")
    res.Header().Set("Expires", "0")
    return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// shareFor splits the party evenly across the booking's tables,
// rounding up, so door staff see per-table headcounts.
func shareFor(b model.Booking) int {
    n := len(b.TableNumbers)
    if n == 0 {
        return b.PartySize
    }
    return (b.PartySize + n - 1) / n
}

// thaiDate formats a date in the Buddhist era, day/month/year.
func thaiDate(t time.Time) string {
    if t.IsZero() {
        return ""
    }
    return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()+543)
}

// paymentLabel renders the derived state the way the sheet records it.
func paymentLabel(s model.PaymentState) string {
    if s == model.PaymentPaid {
        return "จ่ายแล้ว"
    }
    return "จองแล้ว"
}
