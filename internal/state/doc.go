// Package state holds the most recent poll outcome for the tomate displays.
//
// # Overview
//
// The poller writes every completed /status request into a Store; the
// header of each display reads it back to show connection health and the
// time of the last update. The Store is not the render engine's state: the
// ClientState that drives mode transitions and sound cues lives in the
// render package and is only touched synchronously inside a render step.
//
// # Concurrency Model
//
// Polls may overlap when a response takes longer than the poll interval.
// Store.Update is mutex protected and applies results in completion order,
// so the newest completed response always wins. Request order is not
// tracked; that race is accepted because the server is the only source of
// truth and the next poll corrects any stale value.
//
// # Failure Tracking
//
// A failed poll keeps the previous Status, records LastError and increments
// ConsecutiveFailures. IsOffline reports two or more consecutive failures,
// which the header renders as an offline dot. A success resets the counter.
package state
