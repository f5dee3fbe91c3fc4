package render

import "github.com/five82/tomate/internal/timer"

// Sinks is everything a front end must provide to display frames.
type Sinks interface {
	SetClock(clock string)
	SetProgress(groups []int)
	SetMode(mode timer.Mode, themeClass string)
	SetBackground(path string)
}

// Present writes frame to sinks. The mode indicator is rewritten only when
// the frame carries a mode change; everything else is written every time.
func Present(frame Frame, sinks Sinks) {
	sinks.SetClock(frame.Clock)
	if frame.ModeChanged {
		sinks.SetMode(frame.Mode, frame.ThemeClass)
	}
	sinks.SetProgress(frame.Progress)
	sinks.SetBackground(frame.Background)
}
