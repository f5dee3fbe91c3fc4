// Package ui implements the tomate terminal interface with Bubble Tea.
//
// # Frame Loop
//
// The model ticks at display rate (config frame_interval_ms, 16ms by
// default). Every frame asks the shared poll.Gate whether a status request
// may start; the gate admits at most one per poll interval. Poll results come
// back as messages and are applied in the order they complete:
//
//	frameMsg ──> gate.Due? ──> pollCmd ──> pollResultMsg
//	                                          │
//	                   render.Engine.Apply <──┘
//	                   render.Present(frame, screen)
//	                   notifyCmd (mode transition cue)
//
// The screen type is the UI's render.Sinks; View draws from it.
//
// # Commands
//
// Key bindings map to dispatch.Dispatcher actions run as tea.Cmds. Actions
// that change server state return Refresh, which triggers an immediate poll
// outside the gate.
//
// # Overlays
//
//   - help (?): full key reference
//   - settings (,): server, volume, theme, background upload and removal
//   - file picker: background selection, images only
//   - log pane (L): tail of the log file
//   - close confirmation (q)
//
// Fullscreen (f) toggles the terminal's alternate screen.
//
// # Logging
//
// Run redirects the standard logger to the configured log file with
// tea.LogToFile so log output never draws over the interface.
package ui
