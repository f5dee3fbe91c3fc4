// Package sound plays the short audio cues that mark timer transitions.
package sound

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
)

// Cue identifies one of the notification sounds.
type Cue int

const (
	CueNone Cue = iota
	CuePomodoroStart
	CueShortBreakStart
	CueLongBreakStart
	CueTimerStart
)

// ErrCueMissing is returned when no audio file exists for a cue.
var ErrCueMissing = errors.New("sound file missing")

func (c Cue) String() string {
	switch c {
	case CuePomodoroStart:
		return "pomodoro_start"
	case CueShortBreakStart:
		return "short_break_start"
	case CueLongBreakStart:
		return "long_break_start"
	case CueTimerStart:
		return "timer_start"
	default:
		return "none"
	}
}

// Player plays cues at a volume in [0, 1].
//
// Play restarts the cue from the beginning even if it is already playing.
// Prime performs the cheapest possible check that a later Play can succeed,
// without producing sound. Stop silences everything still playing.
type Player interface {
	Play(cue Cue, volume float64) error
	Prime(cue Cue, volume float64) error
	Stop()
}

// Locate returns the first file in dir named after cue, with any extension.
func Locate(dir string, cue Cue) (string, error) {
	if cue == CueNone {
		return "", fmt.Errorf("locate %s: %w", cue, ErrCueMissing)
	}
	matches, err := filepath.Glob(filepath.Join(dir, cue.String()+".*"))
	if err != nil {
		return "", fmt.Errorf("locate %s: %w", cue, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("locate %s in %s: %w", cue, dir, ErrCueMissing)
	}
	return matches[0], nil
}

// BellPlayer rings the terminal bell. It is the fallback when no audio
// player is available.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellPlayer writes BEL characters to w.
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

// Play rings the bell unless the volume is zero.
func (b *BellPlayer) Play(cue Cue, volume float64) error {
	if cue == CueNone || volume <= 0 || b.w == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// Prime is a no-op; the bell needs no permission.
func (b *BellPlayer) Prime(Cue, float64) error {
	return nil
}

// Stop is a no-op; a bell cannot be interrupted.
func (b *BellPlayer) Stop() {}
