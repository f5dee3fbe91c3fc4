package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/tomate/internal/timer"
)

// Snapshot represents the latest poll outcome available to displays.
type Snapshot struct {
	Status              timer.Snapshot
	HasStatus           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
	Polls               int // Completed polls, successful or not
}

// IsOffline returns true when the server has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a completed poll. When err is non-nil the previous status is
// kept but the error is recorded for visibility. Responses are applied in
// completion order; a slow response landing after a newer one wins.
func (s *Store) Update(status *timer.Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Polls++
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if status != nil {
		s.snapshot.Status = *status
		s.snapshot.HasStatus = true
	} else {
		s.snapshot.HasStatus = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
