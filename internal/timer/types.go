package timer

import (
	"math"
	"strings"
)

// Mode is one of the three timer phases reported by the server.
type Mode string

const (
	ModeUnknown    Mode = ""
	ModePomodoro   Mode = "pomodoro"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Modes lists the known modes in display order.
func Modes() []Mode {
	return []Mode{ModePomodoro, ModeShortBreak, ModeLongBreak}
}

// ParseMode maps a wire value to a Mode. Unrecognised values return ModeUnknown.
func ParseMode(value string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModePomodoro:
		return ModePomodoro
	case ModeShortBreak:
		return ModeShortBreak
	case ModeLongBreak:
		return ModeLongBreak
	default:
		return ModeUnknown
	}
}

// IsBreak reports whether m is one of the break modes.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// Label returns a human readable name.
func (m Mode) Label() string {
	switch m {
	case ModePomodoro:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// StatusResponse mirrors the payload returned by /status.
type StatusResponse struct {
	RemainingTime   float64 `json:"remaining_time"`
	IsRunning       bool    `json:"is_running"`
	CurrentMode     string  `json:"current_mode"`
	PomodoroCount   int     `json:"pomodoro_count"`
	BackgroundImage *string `json:"background_image"`
	ShouldPlaySound bool    `json:"should_play_sound"`
}

// Snapshot is one immutable read of the server's timer state.
type Snapshot struct {
	RemainingSeconds int    `json:"remaining_seconds" yaml:"remaining_seconds"`
	Mode             Mode   `json:"mode" yaml:"mode"`
	CompletedCount   int    `json:"completed_count" yaml:"completed_count"`
	BackgroundImage  string `json:"background_image,omitempty" yaml:"background_image,omitempty"`
	Running          bool   `json:"running" yaml:"running"`
}

// Snapshot normalises the wire payload. The server may report fractional
// seconds; they are floored. Negative values clamp to zero.
func (s StatusResponse) Snapshot() Snapshot {
	remaining := 0
	if !math.IsNaN(s.RemainingTime) && s.RemainingTime > 0 {
		remaining = int(math.Floor(s.RemainingTime))
	}
	count := s.PomodoroCount
	if count < 0 {
		count = 0
	}
	bg := ""
	if s.BackgroundImage != nil {
		bg = strings.TrimSpace(*s.BackgroundImage)
	}
	return Snapshot{
		RemainingSeconds: remaining,
		Mode:             ParseMode(s.CurrentMode),
		CompletedCount:   count,
		BackgroundImage:  bg,
		Running:          s.IsRunning,
	}
}

// UploadResponse mirrors /upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Error    string `json:"error"`
}
