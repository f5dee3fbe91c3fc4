package poll

import (
	"context"
	"time"
)

// Loop drives polling from a frame ticker. Every frame asks the gate; when
// due, poll runs on its own goroutine so a slow request never stalls frames.
// Results are handed to apply on the loop goroutine in completion order.
// Loop returns when ctx is cancelled.
func Loop(ctx context.Context, frameEvery time.Duration, gate *Gate, poll func(context.Context) Result, apply func(Result)) {
	if frameEvery <= 0 {
		frameEvery = 16 * time.Millisecond
	}
	ticker := time.NewTicker(frameEvery)
	defer ticker.Stop()

	results := make(chan Result, 4)
	trigger := func(now time.Time) {
		if !gate.Due(now) {
			return
		}
		go func() {
			res := poll(ctx)
			select {
			case results <- res:
			case <-ctx.Done():
			}
		}()
	}

	trigger(time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			trigger(now)
		case res := <-results:
			apply(res)
		}
	}
}
