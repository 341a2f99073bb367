// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingChangedEvent is published after an admin creates, updates or
// deletes a booking.  It carries enough for downstream consumers to
// log or notify without re-reading the store.
type BookingChangedEvent struct {
    Action        string `json:"action"` // created | updated | deleted
    OrderNumber   int    `json:"order_number"`
    GuestName     string `json:"guest_name,omitempty"`
    TableNumbers  []int  `json:"table_numbers,omitempty"`
    PaymentStatus string `json:"payment_status,omitempty"`
    ChangedAt     string `json:"changed_at"`
}
