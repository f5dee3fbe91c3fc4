// Package poll fetches timer status on a fixed cadence.
//
// The cadence is owned by Gate: front ends tick at display rate (Bubble Tea
// frames, or the ticker in Loop) and ask the gate on every tick whether a
// request may start. At most one GET /status starts per interval no matter
// how fast frames arrive. Requests that are still in flight do not block new
// ones; their results are applied in the order they complete.
//
// Poller records every outcome in a state.Store and logs failures with the
// standard log package. Nothing is retried: the next admitted tick is the
// retry.
package poll
