// Package poller refreshes the booking snapshot on a fixed interval so
// every viewer converges on the same data without manual refreshes.
package poller

import (
    "context"
    "log"
    "time"
)

// reloader is the single operation the poller drives.  The snapshot
// satisfies it with its Reload bound to the active store.
type reloader interface {
    Reload(ctx context.Context) error
}

// Poller re-runs a reload on every tick until its context is
// cancelled.  A failed reload is logged and the previous snapshot
// kept; the next tick tries again.
type Poller struct {
    target   reloader
    interval time.Duration
}

// New builds a Poller over the given target.
func New(target reloader, interval time.Duration) *Poller {
    return &Poller{target: target, interval: interval}
}

// Run blocks until ctx is cancelled.  Cancellation is the teardown
// guard: once the context is done no further reload can touch the
// snapshot, even if a tick raced the shutdown.
func (p *Poller) Run(ctx context.Context) {
    ticker := time.NewTicker(p.interval)
    defer ticker.Stop()

    log.Printf("poller: refreshing every %s", p.interval)

    for {
        select {
        case <-ctx.Done():
            log.Printf("poller: stopped")
            return
        case <-ticker.C:
            if err := p.target.Reload(ctx); err != nil {
                log.Printf("poller: reload failed: %v", err)
            }
        }
    }
}
