// Package sheet is the spreadsheet-backed booking store.  Reads come
// from the sheet's full CSV export; writes go through an Apps-Script
// webhook that appends, rewrites or removes a row by order number.
package sheet

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

// ErrWebhookNotConfigured is returned on writes when no Apps-Script
// URL was configured; the sheet is then effectively read-only.
var ErrWebhookNotConfigured = errors.New("sheet webhook url not configured")

// Store implements store.Source against a shared spreadsheet.
type Store struct {
    csvURL     string
    webhookURL string
    client     *http.Client
}

// New builds a Store for the given CSV export URL and optional
// Apps-Script webhook URL.
func New(csvURL, webhookURL string) *Store {
    return &Store{
        csvURL:     csvURL,
        webhookURL: webhookURL,
        client:     &http.Client{Timeout: 15 * time.Second},
    }
}

// List downloads the sheet's CSV export and parses it.  The request
// suppresses caching so repeated loads see the latest rows.
func (s *Store) List(ctx context.Context) ([]model.Booking, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.csvURL, nil)
    if err != nil {
        return nil, err
    }
    req.Header.Set("Cache-Control", "no-cache")

    resp, err := s.client.Do(req)
    if err != nil {
        return nil, fmt.Errorf("fetch sheet: %w", err)
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        return nil, fmt.Errorf("fetch sheet: unexpected status %d", resp.StatusCode)
    }
    return Parse(resp.Body)
}

// sheetRow is the webhook payload; field names mirror the sheet
// columns the Apps Script writes.
type sheetRow struct {
    Action        string `json:"action,omitempty"`
    OrderNumber   int    `json:"orderNumber"`
    GuestName     string `json:"guestName,omitempty"`
    PartySize     int    `json:"partySize,omitempty"`
    PaymentStatus string `json:"paymentStatus,omitempty"`
    TableNumbers  string `json:"tableNumbers,omitempty"`
    Receiver      string `json:"receiver,omitempty"`
    PaymentDate   string `json:"paymentDate,omitempty"`
    PhoneNumber   string `json:"phoneNumber,omitempty"`
}

// Create appends a row for the booking.  The caller assigns the order
// number (next free sequence number); the script upserts by it.
func (s *Store) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
    if err := s.post(ctx, rowOf(b)); err != nil {
        return model.Booking{}, err
    }
    return b, nil
}

// Update rewrites the row with the given order number.
func (s *Store) Update(ctx context.Context, orderNumber int, b model.Booking) error {
    b.OrderNumber = orderNumber
    return s.post(ctx, rowOf(b))
}

// Delete removes the row with the given order number.
func (s *Store) Delete(ctx context.Context, orderNumber int) error {
    return s.post(ctx, sheetRow{Action: "delete", OrderNumber: orderNumber})
}

func rowOf(b model.Booking) sheetRow {
    return sheetRow{
        OrderNumber:   b.OrderNumber,
        GuestName:     b.GuestName,
        PartySize:     b.PartySize,
        PaymentStatus: b.RawStatus,
        TableNumbers:  model.JoinTableNumbers(b.TableNumbers),
        Receiver:      b.Receiver,
        PaymentDate:   b.PaymentDate,
        PhoneNumber:   b.PhoneNumber,
    }
}

func (s *Store) post(ctx context.Context, row sheetRow) error {
    if s.webhookURL == "" {
        return ErrWebhookNotConfigured
    }
    body, err := json.Marshal(row)
    if err != nil {
        return err
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")

    resp, err := s.client.Do(req)
    if err != nil {
        return fmt.Errorf("sheet webhook: %w", err)
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        return fmt.Errorf("sheet webhook: unexpected status %d", resp.StatusCode)
    }
    // The script reports failures in-band with HTTP 200.
    var result struct {
        Error string `json:"error"`
    }
    raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
    if len(raw) > 0 {
        if err := json.Unmarshal(raw, &result); err == nil && result.Error != "" {
            return errors.New(result.Error)
        }
    }
    return nil
}
