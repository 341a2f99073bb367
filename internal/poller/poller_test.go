package poller

import (
    "context"
    "errors"
    "sync/atomic"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

type countingReloader struct {
    calls atomic.Int64
    err   error
}

func (c *countingReloader) Reload(ctx context.Context) error {
    c.calls.Add(1)
    return c.err
}

func TestPoller_TicksUntilCancelled(t *testing.T) {
    target := &countingReloader{}
    p := New(target, 20*time.Millisecond)

    ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
    defer cancel()

    p.Run(ctx)

    assert.GreaterOrEqual(t, target.calls.Load(), int64(3))
}

func TestPoller_KeepsTickingOnError(t *testing.T) {
    target := &countingReloader{err: errors.New("store unreachable")}
    p := New(target, 20*time.Millisecond)

    ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
    defer cancel()

    p.Run(ctx)

    assert.GreaterOrEqual(t, target.calls.Load(), int64(2))
}

func TestPoller_StopsOnContextCancel(t *testing.T) {
    target := &countingReloader{}
    p := New(target, time.Second) // interval longer than the test

    ctx, cancel := context.WithCancel(context.Background())

    done := make(chan struct{})
    go func() {
        p.Run(ctx)
        close(done)
    }()

    cancel()

    select {
    case <-done:
        // stopped cleanly
    case <-time.After(time.Second):
        t.Fatal("poller did not stop on context cancel")
    }
}
