package poll

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/tomate/internal/state"
	"github.com/five82/tomate/internal/timer"
)

func TestGate_FirstCallAlwaysDue(t *testing.T) {
	g := NewGate(time.Second)
	if !g.Due(time.Unix(0, 0)) {
		t.Fatalf("first Due = false, want true")
	}
}

func TestGate_AtMostOnePerInterval(t *testing.T) {
	g := NewGate(1000 * time.Millisecond)
	start := time.Unix(1_700_000_000, 0)

	admitted := 0
	var last time.Time
	// 16ms frames for five seconds.
	for ms := 0; ms <= 5000; ms += 16 {
		now := start.Add(time.Duration(ms) * time.Millisecond)
		if g.Due(now) {
			if admitted > 0 && now.Sub(last) < time.Second {
				t.Fatalf("admitted poll at +%dms only %v after previous", ms, now.Sub(last))
			}
			admitted++
			last = now
		}
	}
	if admitted < 5 || admitted > 6 {
		t.Fatalf("admitted = %d, want 5 or 6 over five seconds", admitted)
	}
}

func TestGate_BoundaryAndDefault(t *testing.T) {
	g := NewGate(0)
	if g.Interval() != DefaultInterval {
		t.Fatalf("Interval() = %v, want %v", g.Interval(), DefaultInterval)
	}
	now := time.Unix(100, 0)
	g.Due(now)
	if g.Due(now.Add(999 * time.Millisecond)) {
		t.Fatalf("Due at 999ms = true, want false")
	}
	if !g.Due(now.Add(1000 * time.Millisecond)) {
		t.Fatalf("Due at 1000ms = false, want true")
	}
}

func TestPoller_RecordsSuccessAndFailure(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"remaining_time": 1500, "current_mode": "pomodoro", "pomodoro_count": 5, "background_image": null}`))
	}))
	t.Cleanup(srv.Close)

	client, err := timer.NewClient(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	store := &state.Store{}
	p := NewPoller(client, store)

	res := p.Poll(context.Background())
	if !res.OK() {
		t.Fatalf("Poll error = %v, want nil", res.Err)
	}
	if res.Snapshot.RemainingSeconds != 1500 || res.Snapshot.Mode != timer.ModePomodoro || res.Snapshot.CompletedCount != 5 {
		t.Fatalf("Snapshot = %#v", res.Snapshot)
	}

	fail.Store(true)
	res = p.Poll(context.Background())
	var statusErr *timer.StatusError
	if !errors.As(res.Err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("Poll error = %v, want StatusError 500", res.Err)
	}

	snap := store.Snapshot()
	if !snap.HasStatus || snap.Status.RemainingSeconds != 1500 {
		t.Fatalf("store lost previous status: %#v", snap)
	}
	if snap.ConsecutiveFailures != 1 || snap.Polls != 2 {
		t.Fatalf("failures=%d polls=%d, want 1 and 2", snap.ConsecutiveFailures, snap.Polls)
	}
}

type countingFetcher struct {
	calls atomic.Int32
}

func (c *countingFetcher) FetchStatus(context.Context) (*timer.StatusResponse, error) {
	c.calls.Add(1)
	return &timer.StatusResponse{RemainingTime: 60, CurrentMode: "short_break"}, nil
}

func TestLoop_FastFramesIssueOneRequestPerWindow(t *testing.T) {
	fetcher := &countingFetcher{}
	p := NewPoller(fetcher, nil)
	gate := NewGate(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var applied []Result
	first := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		Loop(ctx, time.Millisecond, gate, p.Poll, func(r Result) {
			mu.Lock()
			applied = append(applied, r)
			if len(applied) == 1 {
				close(first)
			}
			mu.Unlock()
		})
	}()

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatalf("no poll result applied")
	}
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	if got := fetcher.calls.Load(); got != 1 {
		t.Fatalf("FetchStatus calls = %d, want 1", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if applied[0].Snapshot.Mode != timer.ModeShortBreak {
		t.Fatalf("applied mode = %q, want short_break", applied[0].Snapshot.Mode)
	}
}
