package poll

import (
	"sync"
	"time"
)

// DefaultInterval is the minimum spacing between status requests.
const DefaultInterval = time.Second

// Gate rate-limits polls triggered from a much faster frame loop. The time is
// recorded when a poll is admitted, not when it completes, so a slow or
// failing request still holds the window closed.
type Gate struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	started  bool
}

// NewGate returns a gate admitting at most one poll per interval. A
// non-positive interval uses DefaultInterval.
func NewGate(interval time.Duration) *Gate {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Gate{interval: interval}
}

// Interval returns the configured spacing.
func (g *Gate) Interval() time.Duration {
	return g.interval
}

// Due reports whether a poll may start at now and, if so, records now as the
// last poll time. The first call is always due.
func (g *Gate) Due(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started && now.Sub(g.last) < g.interval {
		return false
	}
	g.started = true
	g.last = now
	return true
}
