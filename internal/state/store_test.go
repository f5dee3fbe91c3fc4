package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/tomate/internal/timer"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	status := &timer.Snapshot{RemainingSeconds: 1500, Mode: timer.ModePomodoro, CompletedCount: 2}

	before := time.Now()
	s.Update(status, nil)

	snap := s.Snapshot()
	if !snap.HasStatus || snap.Status.RemainingSeconds != 1500 || snap.Status.Mode != timer.ModePomodoro {
		t.Fatalf("snapshot status = %#v, want 1500s pomodoro HasStatus=true", snap.Status)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if snap.Polls != 1 {
		t.Fatalf("Polls = %d, want 1", snap.Polls)
	}

	// Mutating the caller's value must not leak into the store.
	status.RemainingSeconds = 1
	if got := s.Snapshot().Status.RemainingSeconds; got != 1500 {
		t.Fatalf("stored RemainingSeconds = %d, want 1500", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&timer.Snapshot{Mode: timer.ModeShortBreak, CompletedCount: 4}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.HasStatus != prev.HasStatus || snap.Status != prev.Status {
		t.Fatalf("status changed on error: got %#v want %#v", snap.Status, prev.Status)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("fresh store: failures=%d offline=%v, want 0/false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	s.Update(&timer.Snapshot{Mode: timer.ModePomodoro}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false after success")
	}
	if snap.Polls != 3 {
		t.Fatalf("Polls = %d, want 3", snap.Polls)
	}
}
