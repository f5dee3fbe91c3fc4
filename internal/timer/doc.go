// Package timer provides an HTTP client for the Pomodoro timer server.
//
// # Overview
//
// The server owns all timer logic: countdown, mode transitions and the
// completed-session counter. This package only reads that state and sends
// commands; it never computes timer state locally.
//
// # Architecture
//
//   - client.go: HTTP client, command endpoints and multipart upload
//   - types.go: Mode, the /status wire payload and the normalised Snapshot
//
// # Client Usage
//
//	client, err := timer.NewClient("127.0.0.1:5000", 0)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	status, err := client.FetchStatus(ctx)
//	if err != nil {
//		log.Printf("status fetch failed: %v", err)
//	}
//	snap := status.Snapshot()
//
// # API Endpoints
//
//   - GET /status: remaining_time, current_mode, pomodoro_count, background_image
//   - GET /start, POST /start: start or resume the countdown
//   - GET /pause, GET /reset
//   - POST /switch_to_pomodoro, /switch_to_short_break, /switch_to_long_break
//   - POST /upload: multipart field "background"
//   - POST /remove_background
//
// # Error Handling
//
// HTTP statuses >= 400 are returned as *StatusError carrying the path, the
// code and the server's {"error": ...} message when present. Network and
// decode failures are wrapped with fmt.Errorf. Uploads are validated locally
// (extension and size) before any request is made; unsupported types return
// ErrUnsupportedImage.
//
// # Snapshot Normalisation
//
// The server reports remaining_time as a JSON number that is not always an
// integer. Snapshot floors it and clamps negatives to zero so renderers can
// treat it as whole seconds. A null or blank background_image becomes "".
//
// # Timeouts
//
// NewClient takes an explicit timeout. Zero means no client-side timeout: a
// hung request simply produces no update until it settles.
package timer
