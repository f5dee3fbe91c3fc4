// Package logtail reads and colours the tail of the tomate log file.
//
// In the terminal UI, log output is redirected to a file so it cannot
// corrupt the screen. The log pane reads the last lines back with Read,
// which keeps a ring buffer of maxLines entries and makes a single pass
// over the file. Missing files read as empty.
//
// ColorizeLine understands the standard library logger layout:
//
//	tomate 2026/10/18 09:15:02 status poll failed: execute request: ...
//
// The prefix and timestamp are dimmed; messages mentioning a failure are
// highlighted. Anything else passes through untouched.
package logtail
