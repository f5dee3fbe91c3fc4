package poll

import (
	"context"
	"log"

	"github.com/five82/tomate/internal/state"
	"github.com/five82/tomate/internal/timer"
)

// Result is the outcome of a single status request. Exactly one of Snapshot
// and Err is meaningful.
type Result struct {
	Snapshot timer.Snapshot
	Err      error
}

// OK reports whether the poll produced a snapshot.
func (r Result) OK() bool {
	return r.Err == nil
}

// Poller fetches status and records each outcome in a shared store.
type Poller struct {
	client timer.StatusFetcher
	store  *state.Store
}

// NewPoller returns a poller. store may be nil when nothing needs the history.
func NewPoller(client timer.StatusFetcher, store *state.Store) *Poller {
	return &Poller{client: client, store: store}
}

// Poll performs one GET /status. Failures are logged and recorded; they are
// never retried here. The next due tick is the retry.
func (p *Poller) Poll(ctx context.Context) Result {
	status, err := p.client.FetchStatus(ctx)
	if err != nil {
		if p.store != nil {
			p.store.Update(nil, err)
		}
		log.Printf("status poll failed: %v", err)
		return Result{Err: err}
	}
	snap := status.Snapshot()
	if p.store != nil {
		p.store.Update(&snap, nil)
	}
	return Result{Snapshot: snap}
}
