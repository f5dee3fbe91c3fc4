package sound

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "short_break_start.wav"), []byte("RIFF"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Locate(dir, CueShortBreakStart)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if filepath.Base(got) != "short_break_start.wav" {
		t.Fatalf("Locate = %q, want short_break_start.wav", got)
	}

	if _, err := Locate(dir, CueLongBreakStart); !errors.Is(err, ErrCueMissing) {
		t.Fatalf("Locate missing error = %v, want ErrCueMissing", err)
	}
	if _, err := Locate(dir, CueNone); !errors.Is(err, ErrCueMissing) {
		t.Fatalf("Locate(CueNone) error = %v, want ErrCueMissing", err)
	}
}

func TestExpandArgs(t *testing.T) {
	argv := []string{"player", "--volume={percent}", "--pa={pa}", "-v", "{volume}", "{file}"}

	got := expandArgs(argv, "/tmp/a.mp3", 0.1)
	want := []string{"player", "--volume=10", "--pa=6554", "-v", "0.1", "/tmp/a.mp3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expandArgs[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	clamped := expandArgs([]string{"{percent}"}, "f", 3)
	if clamped[0] != "100" {
		t.Fatalf("expandArgs clamp = %q, want 100", clamped[0])
	}
	if argv[1] != "--volume={percent}" {
		t.Fatalf("expandArgs mutated the template: %q", argv[1])
	}
}

func TestBellPlayer(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellPlayer(&buf)

	if err := p.Play(CuePomodoroStart, 0.5); err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if err := p.Play(CuePomodoroStart, 0); err != nil {
		t.Fatalf("Play muted returned error: %v", err)
	}
	if err := p.Play(CueNone, 1); err != nil {
		t.Fatalf("Play(CueNone) returned error: %v", err)
	}
	if buf.String() != "\a" {
		t.Fatalf("bell output = %q, want a single BEL", buf.String())
	}
	if err := p.Prime(CueTimerStart, 1); err != nil {
		t.Fatalf("Prime returned error: %v", err)
	}
}

func TestExecPlayer_RestartsRunningCue(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "timer_start.mp3"), []byte("ID3"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p := NewExecPlayerArgs(dir, []string{"sh", "-c", "sleep 5", "{file}"})
	t.Cleanup(p.Stop)

	if err := p.Play(CueTimerStart, 0.5); err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	p.mu.Lock()
	first := p.running[CueTimerStart]
	p.mu.Unlock()

	if err := p.Play(CueTimerStart, 0.5); err != nil {
		t.Fatalf("second Play returned error: %v", err)
	}
	p.mu.Lock()
	second := p.running[CueTimerStart]
	p.mu.Unlock()

	if first == nil || second == nil || first == second {
		t.Fatalf("expected a fresh process on replay, got first=%v second=%v", first, second)
	}

	if !p.playing(CueTimerStart) {
		t.Fatalf("replayed cue should still be playing")
	}

	p.Stop()
	if p.playing(CueTimerStart) {
		t.Fatalf("cue still tracked after Stop")
	}
}

func TestExecPlayer_MissingFile(t *testing.T) {
	p := NewExecPlayerArgs(t.TempDir(), []string{"sh", "{file}"})
	if err := p.Play(CuePomodoroStart, 1); !errors.Is(err, ErrCueMissing) {
		t.Fatalf("Play error = %v, want ErrCueMissing", err)
	}
	if err := p.Play(CueNone, 1); err != nil {
		t.Fatalf("Play(CueNone) returned error: %v", err)
	}
}
