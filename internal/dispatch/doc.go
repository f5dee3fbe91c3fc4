// Package dispatch maps user actions to timer server commands.
//
// Each method blocks for the duration of its requests and returns a Result
// rather than an error; failures are logged and never retried. A Result with
// Refresh set means the caller should fetch status right away.
package dispatch
