// Package render turns timer snapshots into displayable frames.
//
// Everything here is free of I/O except Notifier, which hands cues to a
// sound.Player. Engine keeps the little memory needed to detect mode
// transitions; Present writes a frame to whatever Sinks the front end
// provides.
package render
