package dispatch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/five82/tomate/internal/sound"
	"github.com/five82/tomate/internal/timer"
)

// Action names a user command.
type Action string

const (
	ActionStart            Action = "start"
	ActionPause            Action = "pause"
	ActionReset            Action = "reset"
	ActionPomodoro         Action = "switch_to_pomodoro"
	ActionShortBreak       Action = "switch_to_short_break"
	ActionLongBreak        Action = "switch_to_long_break"
	ActionUpload           Action = "upload"
	ActionRemoveBackground Action = "remove_background"
)

// Result reports the outcome of one action. Refresh asks the caller to
// re-fetch status immediately instead of waiting for the next poll.
type Result struct {
	Action   Action
	Err      error
	Refresh  bool
	Skipped  bool
	Filename string
}

// OK reports whether the action completed without error.
func (r Result) OK() bool {
	return r.Err == nil
}

// Cues plays the start cue around the start command. *render.Notifier
// satisfies it.
type Cues interface {
	Prime(cue sound.Cue) error
	Play(cue sound.Cue) error
}

// Dispatcher translates user actions into server commands.
type Dispatcher struct {
	client timer.Commander
	cues   Cues
}

// New returns a dispatcher. cues may be nil.
func New(client timer.Commander, cues Cues) *Dispatcher {
	return &Dispatcher{client: client, cues: cues}
}

// Start primes the start cue, starts the timer, and plays the cue once the
// server has accepted the command.
func (d *Dispatcher) Start(ctx context.Context) Result {
	if d.cues != nil {
		if err := d.cues.Prime(sound.CueTimerStart); err != nil {
			log.Printf("prime start cue: %v", err)
		}
	}
	if err := d.client.Start(ctx); err != nil {
		return d.fail(ActionStart, err)
	}
	if d.cues != nil {
		_ = d.cues.Play(sound.CueTimerStart)
	}
	return Result{Action: ActionStart}
}

// Pause stops the countdown.
func (d *Dispatcher) Pause(ctx context.Context) Result {
	if err := d.client.Pause(ctx); err != nil {
		return d.fail(ActionPause, err)
	}
	return Result{Action: ActionPause}
}

// Reset returns the server to a fresh focus session.
func (d *Dispatcher) Reset(ctx context.Context) Result {
	if err := d.client.Reset(ctx); err != nil {
		return d.fail(ActionReset, err)
	}
	return Result{Action: ActionReset}
}

// SwitchToPomodoro leaves a break early and starts the next focus session.
// It reads the current mode first and does nothing while already focusing.
func (d *Dispatcher) SwitchToPomodoro(ctx context.Context) Result {
	status, err := d.client.FetchStatus(ctx)
	if err != nil {
		return d.fail(ActionPomodoro, fmt.Errorf("read mode: %w", err))
	}
	if !timer.ParseMode(status.CurrentMode).IsBreak() {
		return Result{Action: ActionPomodoro, Skipped: true}
	}
	if err := d.client.SwitchMode(ctx, timer.ModePomodoro); err != nil {
		return d.fail(ActionPomodoro, err)
	}
	if err := d.client.Resume(ctx); err != nil {
		return d.fail(ActionPomodoro, fmt.Errorf("resume: %w", err))
	}
	return Result{Action: ActionPomodoro, Refresh: true}
}

// SwitchToShortBreak switches to a short break.
func (d *Dispatcher) SwitchToShortBreak(ctx context.Context) Result {
	return d.switchBreak(ctx, ActionShortBreak, timer.ModeShortBreak)
}

// SwitchToLongBreak switches to a long break.
func (d *Dispatcher) SwitchToLongBreak(ctx context.Context) Result {
	return d.switchBreak(ctx, ActionLongBreak, timer.ModeLongBreak)
}

// Switch dispatches to the action for mode.
func (d *Dispatcher) Switch(ctx context.Context, mode timer.Mode) Result {
	switch mode {
	case timer.ModePomodoro:
		return d.SwitchToPomodoro(ctx)
	case timer.ModeShortBreak:
		return d.SwitchToShortBreak(ctx)
	case timer.ModeLongBreak:
		return d.SwitchToLongBreak(ctx)
	default:
		return d.fail(Action("switch"), fmt.Errorf("unknown mode %q", mode))
	}
}

func (d *Dispatcher) switchBreak(ctx context.Context, action Action, mode timer.Mode) Result {
	if err := d.client.SwitchMode(ctx, mode); err != nil {
		return d.fail(action, err)
	}
	return Result{Action: action, Refresh: true}
}

// UploadBackground sends the image at path as the new background.
func (d *Dispatcher) UploadBackground(ctx context.Context, path string) Result {
	resp, err := d.client.UploadBackground(ctx, path)
	if err != nil {
		return d.fail(ActionUpload, err)
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "server rejected upload"
		}
		return d.fail(ActionUpload, fmt.Errorf("upload %s: %s", filepath.Base(path), msg))
	}
	return Result{Action: ActionUpload, Refresh: true, Filename: resp.Filename}
}

// RemoveBackground restores the default background.
func (d *Dispatcher) RemoveBackground(ctx context.Context) Result {
	if err := d.client.RemoveBackground(ctx); err != nil {
		return d.fail(ActionRemoveBackground, err)
	}
	return Result{Action: ActionRemoveBackground, Refresh: true}
}

func (d *Dispatcher) fail(action Action, err error) Result {
	log.Printf("%s failed: %v", action, err)
	return Result{Action: action, Err: err}
}
