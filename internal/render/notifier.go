package render

import (
	"fmt"
	"log"

	"github.com/five82/tomate/internal/sound"
)

// Notifier plays the cue attached to a frame.
type Notifier struct {
	player sound.Player
	volume float64
}

// NewNotifier plays through player at the given volume.
func NewNotifier(player sound.Player, volume float64) *Notifier {
	return &Notifier{player: player, volume: volume}
}

// Volume returns the configured playback volume.
func (n *Notifier) Volume() float64 {
	if n == nil {
		return 0
	}
	return n.volume
}

// Notify plays frame.Cue, if any. Failures are logged and returned so callers
// can observe them; they never affect rendering.
func (n *Notifier) Notify(frame Frame) error {
	if n == nil || n.player == nil || frame.Cue == sound.CueNone {
		return nil
	}
	if err := n.player.Play(frame.Cue, n.volume); err != nil {
		err = fmt.Errorf("play %s cue: %w", frame.Cue, err)
		log.Printf("sound: %v", err)
		return err
	}
	return nil
}

// Play plays an arbitrary cue at the notifier's volume.
func (n *Notifier) Play(cue sound.Cue) error {
	return n.Notify(Frame{Cue: cue})
}

// Stop silences any cue still playing. It is called once on shutdown.
func (n *Notifier) Stop() {
	if n == nil || n.player == nil {
		return
	}
	n.player.Stop()
}

// Prime asks the player to get ready for cue.
func (n *Notifier) Prime(cue sound.Cue) error {
	if n == nil || n.player == nil {
		return nil
	}
	return n.player.Prime(cue, n.volume)
}
