package render

import (
	"github.com/five82/tomate/internal/sound"
	"github.com/five82/tomate/internal/timer"
)

// ClientState is the minimal transition memory kept between snapshots.
type ClientState struct {
	CurrentMode timer.Mode // ModeUnknown until the first render
	LastMode    timer.Mode
	FirstRender bool
}

// Frame is the visual state computed from one snapshot.
type Frame struct {
	Clock       string
	Progress    []int
	Background  string
	Mode        timer.Mode
	ThemeClass  string
	ModeChanged bool
	Cue         sound.Cue
	Running     bool
	Completed   int
}

// Engine turns snapshots into frames. It owns ClientState; callers must not
// use one Engine from more than one goroutine.
type Engine struct {
	assets Assets
	state  ClientState
}

// NewEngine returns an engine awaiting its first snapshot.
func NewEngine(assets Assets) *Engine {
	return &Engine{
		assets: assets,
		state:  ClientState{FirstRender: true},
	}
}

// State returns a copy of the current client state.
func (e *Engine) State() ClientState {
	return e.state
}

// Apply computes the next frame. A mode change (or the first render) marks
// the frame as ModeChanged; a cue for the outgoing mode is attached only when
// this is not the first render.
func (e *Engine) Apply(snap timer.Snapshot) Frame {
	frame := Frame{
		Clock:      FormatClock(snap.RemainingSeconds),
		Progress:   ProgressGroups(snap.CompletedCount),
		Background: BackgroundPath(snap.BackgroundImage, e.assets),
		Mode:       e.state.CurrentMode,
		ThemeClass: ThemeClass(e.state.CurrentMode),
		Running:    snap.Running,
		Completed:  snap.CompletedCount,
	}

	if snap.Mode != e.state.CurrentMode || e.state.FirstRender {
		if !e.state.FirstRender && e.state.CurrentMode != timer.ModeUnknown {
			frame.Cue = CueFor(e.state.CurrentMode)
		}
		e.state.LastMode = e.state.CurrentMode
		e.state.CurrentMode = snap.Mode
		e.state.FirstRender = false

		frame.ModeChanged = true
		frame.Mode = snap.Mode
		frame.ThemeClass = ThemeClass(snap.Mode)
	}
	return frame
}

// CueFor maps the mode being left to the cue announcing the transition.
func CueFor(mode timer.Mode) sound.Cue {
	switch mode {
	case timer.ModePomodoro:
		return sound.CuePomodoroStart
	case timer.ModeShortBreak:
		return sound.CueShortBreakStart
	case timer.ModeLongBreak:
		return sound.CueLongBreakStart
	default:
		return sound.CueNone
	}
}
