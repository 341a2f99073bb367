// Package store defines the booking-store contract shared by the
// relational and spreadsheet backends, and the in-memory snapshot the
// rest of the service reads from.
package store

import (
    "context"
    "sync"
    "time"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

// Source is the external booking store.  The service does a single
// List per load cycle and no retries; writes go straight through and
// the caller schedules a refresh afterwards.
type Source interface {
    List(ctx context.Context) ([]model.Booking, error)
    Create(ctx context.Context, b model.Booking) (model.Booking, error)
    Update(ctx context.Context, orderNumber int, b model.Booking) error
    Delete(ctx context.Context, orderNumber int) error
}

// Snapshot is the read-through cache of the booking list.  Loads are
// last-write-wins: whichever reload finishes last overwrites the
// slice, which is acceptable against an eventually-consistent store.
type Snapshot struct {
    mu       sync.RWMutex
    bookings []model.Booking
    loadedAt time.Time
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot { return &Snapshot{} }

// Set replaces the cached list and stamps the load time.
func (s *Snapshot) Set(bookings []model.Booking) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.bookings = bookings
    s.loadedAt = time.Now().UTC()
}

// Bookings returns a copy of the cached list.
func (s *Snapshot) Bookings() []model.Booking {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.Booking, len(s.bookings))
    copy(out, s.bookings)
    return out
}

// LoadedAt reports when the snapshot was last replaced; the zero time
// means no load has completed yet.
func (s *Snapshot) LoadedAt() time.Time {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return s.loadedAt
}

// Reload lists the source once and replaces the snapshot.  On error
// the previous contents are kept.
func (s *Snapshot) Reload(ctx context.Context, src Source) error {
    bookings, err := src.List(ctx)
    if err != nil {
        return err
    }
    s.Set(bookings)
    return nil
}

// Bound ties a snapshot to its source so components that only reload
// (the poller, the refresh endpoint) need a single dependency.
type Bound struct {
    Snap *Snapshot
    Src  Source
}

// Reload refreshes the bound snapshot from the bound source.
func (b Bound) Reload(ctx context.Context) error {
    return b.Snap.Reload(ctx, b.Src)
}
