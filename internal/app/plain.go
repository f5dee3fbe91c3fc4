package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/five82/tomate/internal/render"
	"github.com/five82/tomate/internal/sound"
	"github.com/five82/tomate/internal/state"
	"github.com/five82/tomate/internal/timer"
)

// PlainDisplay is a line-oriented render.Sinks for pipes and dumb terminals.
// One line is written per applied frame.
type PlainDisplay struct {
	w          io.Writer
	clock      string
	progress   []int
	mode       timer.Mode
	background string
	offline    bool
}

var _ render.Sinks = (*PlainDisplay)(nil)

// NewPlainDisplay writes to w. A nil writer is an error.
func NewPlainDisplay(w io.Writer) (*PlainDisplay, error) {
	if w == nil {
		return nil, errors.New("plain display: nil writer")
	}
	return &PlainDisplay{w: w}, nil
}

func (d *PlainDisplay) SetClock(clock string)    { d.clock = clock }
func (d *PlainDisplay) SetProgress(groups []int) { d.progress = groups }
func (d *PlainDisplay) SetBackground(path string) {
	d.background = path
}

// SetMode records the active mode. It is only called on transitions.
func (d *PlainDisplay) SetMode(mode timer.Mode, _ string) {
	d.mode = mode
}

// Flush writes the current state as one line.
func (d *PlainDisplay) Flush(frame render.Frame) {
	d.offline = false
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-11s", d.clock, d.mode.Label())
	if frame.Running {
		b.WriteString("  running")
	} else {
		b.WriteString("  paused ")
	}
	if progress := render.FormatProgress(d.progress, ""); progress != "" {
		b.WriteString("  " + progress)
	}
	if d.background != "" {
		b.WriteString("  bg=" + d.background)
	}
	if frame.Cue != sound.CueNone {
		b.WriteString("  ♪ " + frame.Cue.String())
	}
	fmt.Fprintln(d.w, b.String())
}

// Offline reports a failed poll once per outage.
func (d *PlainDisplay) Offline(snap state.Snapshot) {
	if d.offline || snap.LastError == nil {
		return
	}
	d.offline = true
	fmt.Fprintf(d.w, "server unreachable: %v\n", snap.LastError)
}
