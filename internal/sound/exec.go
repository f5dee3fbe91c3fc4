package sound

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// ErrNoPlayer is returned when no command line audio player can be found.
var ErrNoPlayer = errors.New("no audio player found")

// Command templates tried in order when no player is configured.
var candidates = []string{
	"paplay --volume={pa} {file}",
	"afplay -v {volume} {file}",
	"ffplay -nodisp -autoexit -loglevel quiet -volume {percent} {file}",
	"mpv --no-video --really-quiet --volume={percent} {file}",
}

// ExecPlayer plays cue files by spawning an external player per cue.
type ExecPlayer struct {
	dir  string
	argv []string

	mu      sync.Mutex
	running map[Cue]*exec.Cmd
}

// NewExecPlayer builds a player from a command template such as
// "mpv --volume={percent} {file}". An empty template auto-detects one of the
// known players on PATH.
func NewExecPlayer(dir, template string) (*ExecPlayer, error) {
	template = strings.TrimSpace(template)
	if template == "" {
		for _, candidate := range candidates {
			argv := strings.Fields(candidate)
			if _, err := exec.LookPath(argv[0]); err == nil {
				return NewExecPlayerArgs(dir, argv), nil
			}
		}
		return nil, ErrNoPlayer
	}
	argv := strings.Fields(template)
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, fmt.Errorf("player %q: %w", argv[0], err)
	}
	return NewExecPlayerArgs(dir, argv), nil
}

// NewExecPlayerArgs builds a player from an already split argument vector.
func NewExecPlayerArgs(dir string, argv []string) *ExecPlayer {
	return &ExecPlayer{
		dir:     dir,
		argv:    append([]string(nil), argv...),
		running: make(map[Cue]*exec.Cmd),
	}
}

// Play starts the cue asynchronously, killing any running instance of the
// same cue first so playback always starts from zero.
func (p *ExecPlayer) Play(cue Cue, volume float64) error {
	if cue == CueNone {
		return nil
	}
	file, err := Locate(p.dir, cue)
	if err != nil {
		return err
	}
	args := expandArgs(p.argv, file, volume)

	p.mu.Lock()
	defer p.mu.Unlock()

	if prev := p.running[cue]; prev != nil && prev.Process != nil {
		_ = prev.Process.Kill()
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		delete(p.running, cue)
		return fmt.Errorf("play %s: %w", cue, err)
	}
	p.running[cue] = cmd
	go p.reap(cue, cmd)
	return nil
}

// Prime checks that both the player binary and the cue file are present.
func (p *ExecPlayer) Prime(cue Cue, _ float64) error {
	if _, err := exec.LookPath(p.argv[0]); err != nil {
		return fmt.Errorf("prime %s: %w", cue, err)
	}
	file, err := Locate(p.dir, cue)
	if err != nil {
		return err
	}
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("prime %s: %w", cue, err)
	}
	return nil
}

func (p *ExecPlayer) playing(cue Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running[cue] != nil
}

// Stop kills every running cue process.
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for cue, cmd := range p.running {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		delete(p.running, cue)
	}
}

func (p *ExecPlayer) reap(cue Cue, cmd *exec.Cmd) {
	_ = cmd.Wait()
	p.mu.Lock()
	if p.running[cue] == cmd {
		delete(p.running, cue)
	}
	p.mu.Unlock()
}

// expandArgs substitutes {file}, {volume} (0-1), {percent} (0-100) and
// {pa} (PulseAudio 0-65536) in every argument.
func expandArgs(argv []string, file string, volume float64) []string {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	replacer := strings.NewReplacer(
		"{file}", file,
		"{volume}", strconv.FormatFloat(volume, 'f', -1, 64),
		"{percent}", strconv.Itoa(int(volume*100+0.5)),
		"{pa}", strconv.Itoa(int(volume*65536+0.5)),
	)
	out := make([]string, len(argv))
	for i, arg := range argv {
		out[i] = replacer.Replace(arg)
	}
	return out
}
