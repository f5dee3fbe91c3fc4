package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tomate/internal/config"
	"github.com/five82/tomate/internal/dispatch"
	"github.com/five82/tomate/internal/poll"
	"github.com/five82/tomate/internal/prefs"
	"github.com/five82/tomate/internal/render"
	"github.com/five82/tomate/internal/sound"
	"github.com/five82/tomate/internal/state"
	"github.com/five82/tomate/internal/timer"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Config     *config.Config
	Poller     *poll.Poller
	Gate       *poll.Gate
	Store      *state.Store
	Dispatcher *dispatch.Dispatcher
	Notifier   *render.Notifier
	Assets     render.Assets
	ThemeName  string
	PrefsPath  string
}

// screen receives presented frames. It is the UI's render.Sinks.
type screen struct {
	clock      string
	progress   []int
	mode       timer.Mode
	themeClass string
	background string
	modeWrites int
}

func (s *screen) SetClock(clock string)    { s.clock = clock }
func (s *screen) SetProgress(groups []int) { s.progress = groups }
func (s *screen) SetBackground(path string) {
	s.background = path
}

func (s *screen) SetMode(mode timer.Mode, themeClass string) {
	s.mode = mode
	s.themeClass = themeClass
	s.modeWrites++
}

var _ render.Sinks = (*screen)(nil)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	poller      *poll.Poller
	gate        *poll.Gate
	store       *state.Store
	dispatcher  *dispatch.Dispatcher
	notifier    *render.Notifier
	prefsPath   string
	frameEvery  time.Duration
	server      string
	logFile     string
	playlistURL string

	// Rendering
	engine *render.Engine
	screen *screen
	frame  render.Frame

	// UI state
	theme      Theme
	keys       keyMap
	help       help.Model
	width      int
	height     int
	ready      bool
	fullscreen bool
	quitting   bool

	// Overlays
	showHelp     bool
	showSettings bool
	showLogs     bool
	confirmClose bool
	picking      bool

	// Data state
	snapshot  state.Snapshot
	uploading bool
	flash     string
	flashErr  bool

	picker      filepicker.Model
	logViewport viewport.Model
}

// New creates a new Bubble Tea model. Poller, Gate, Store and Dispatcher
// are required.
func New(opts Options) (Model, error) {
	if opts.Poller == nil || opts.Gate == nil || opts.Store == nil || opts.Dispatcher == nil {
		return Model{}, errors.New("ui: poller, gate, store and dispatcher are required")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	frameEvery := cfg.FrameInterval
	if frameEvery <= 0 {
		frameEvery = 16 * time.Millisecond
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		poller:      opts.Poller,
		gate:        opts.Gate,
		store:       opts.Store,
		dispatcher:  opts.Dispatcher,
		notifier:    opts.Notifier,
		prefsPath:   prefsPath,
		frameEvery:  frameEvery,
		server:      cfg.Server,
		logFile:     cfg.LogFile,
		playlistURL: cfg.PlaylistURL,
		engine:      render.NewEngine(opts.Assets),
		screen:      &screen{clock: render.FormatClock(0)},
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		picker:      newPicker(),
	}, nil
}

// Init implements tea.Model. It only arms the frame loop; the gate admits
// the first status request on the first frame.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameEvery)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.logViewport = viewport.New(msg.Width, logPaneHeight(msg.Height))
			m.logViewport.KeyMap.Up = m.keys.Up
			m.logViewport.KeyMap.Down = m.keys.Down
		}
		m.ready = true
		m.logViewport.Width = msg.Width
		m.logViewport.Height = logPaneHeight(msg.Height)
		m.picker.Height = pickerHeight(msg.Height)
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case pollResultMsg:
		return m.handlePoll(poll.Result(msg))

	case dispatchMsg:
		return m.handleDispatch(dispatch.Result(msg))

	case cueMsg:
		return m, nil

	case logLinesMsg:
		m.setLogLines(msg)
		return m, nil

	case logErrorMsg:
		log.Printf("read log: %v", msg.err)
		return m, nil

	case linkMsg:
		m.handleLink(msg)
		return m, nil
	}

	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.confirmClose {
		return m.renderConfirmClose()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.picking {
		return m.renderPicker()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirmClose {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.confirmClose = false
		}
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.picking {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.confirmClose = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Start):
		d, ctx := m.dispatcher, m.ctx
		return m, dispatchCmd(func() dispatch.Result { return d.Start(ctx) })

	case key.Matches(msg, m.keys.Pause):
		d, ctx := m.dispatcher, m.ctx
		return m, dispatchCmd(func() dispatch.Result { return d.Pause(ctx) })

	case key.Matches(msg, m.keys.Reset):
		d, ctx := m.dispatcher, m.ctx
		return m, dispatchCmd(func() dispatch.Result { return d.Reset(ctx) })

	case key.Matches(msg, m.keys.Pomodoro):
		d, ctx := m.dispatcher, m.ctx
		return m, dispatchCmd(func() dispatch.Result { return d.SwitchToPomodoro(ctx) })

	case key.Matches(msg, m.keys.ShortBreak):
		d, ctx := m.dispatcher, m.ctx
		return m, dispatchCmd(func() dispatch.Result { return d.SwitchToShortBreak(ctx) })

	case key.Matches(msg, m.keys.LongBreak):
		d, ctx := m.dispatcher, m.ctx
		return m, dispatchCmd(func() dispatch.Result { return d.SwitchToLongBreak(ctx) })

	case key.Matches(msg, m.keys.Fullscreen):
		m.fullscreen = !m.fullscreen
		if m.fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen

	case key.Matches(msg, m.keys.Settings):
		m.showSettings = !m.showSettings
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = !m.showLogs
		if m.showLogs {
			return m, readLogsCmd(m.logFile)
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.SaveTheme(m.prefsPath, m.theme.Name); err != nil {
				log.Printf("save theme: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenPlaylist):
		return m, openLinkCmd(m.playlistURL)

	case key.Matches(msg, m.keys.CopyPlaylist):
		return m, copyLinkCmd(m.playlistURL)
	}

	if m.showSettings {
		switch {
		case key.Matches(msg, m.keys.Upload):
			return m.openPicker()
		case key.Matches(msg, m.keys.RemoveBackground):
			d, ctx := m.dispatcher, m.ctx
			return m, dispatchCmd(func() dispatch.Result { return d.RemoveBackground(ctx) })
		}
	}

	if m.showLogs {
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleFrame runs once per display frame. The gate decides whether this
// frame starts a status request.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{frameCmd(m.frameEvery)}
	if m.gate.Due(now) {
		cmds = append(cmds, pollCmd(m.ctx, m.poller))
		if m.showLogs {
			cmds = append(cmds, readLogsCmd(m.logFile))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handlePoll(res poll.Result) (tea.Model, tea.Cmd) {
	m.snapshot = m.store.Snapshot()
	if !res.OK() {
		return m, nil
	}
	frame := m.engine.Apply(res.Snapshot)
	render.Present(frame, m.screen)
	m.frame = frame
	if frame.Cue != sound.CueNone && m.notifier != nil {
		return m, notifyCmd(m.notifier, frame)
	}
	return m, nil
}

func (m Model) handleDispatch(res dispatch.Result) (tea.Model, tea.Cmd) {
	if res.Action == dispatch.ActionUpload {
		m.uploading = false
	}
	m.flash, m.flashErr = describeResult(res)
	if res.Refresh {
		return m, pollCmd(m.ctx, m.poller)
	}
	return m, nil
}

func describeResult(res dispatch.Result) (string, bool) {
	if res.Err != nil {
		return fmt.Sprintf("%s failed: %v", actionLabel(res.Action), res.Err), true
	}
	if res.Skipped {
		return "Already in a focus session", false
	}
	switch res.Action {
	case dispatch.ActionUpload:
		return "Background uploaded: " + res.Filename, false
	case dispatch.ActionRemoveBackground:
		return "Background removed", false
	default:
		return "", false
	}
}

func actionLabel(a dispatch.Action) string {
	switch a {
	case dispatch.ActionStart:
		return "Start"
	case dispatch.ActionPause:
		return "Pause"
	case dispatch.ActionReset:
		return "Reset"
	case dispatch.ActionPomodoro:
		return "Switch to pomodoro"
	case dispatch.ActionShortBreak:
		return "Switch to short break"
	case dispatch.ActionLongBreak:
		return "Switch to long break"
	case dispatch.ActionUpload:
		return "Upload"
	case dispatch.ActionRemoveBackground:
		return "Remove background"
	default:
		return string(a)
	}
}

// Messages

type frameMsg time.Time

type pollResultMsg poll.Result

type dispatchMsg dispatch.Result

type cueMsg struct{ err error }

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func pollCmd(ctx context.Context, p *poll.Poller) tea.Cmd {
	return func() tea.Msg {
		return pollResultMsg(p.Poll(ctx))
	}
}

func dispatchCmd(fn func() dispatch.Result) tea.Cmd {
	return func() tea.Msg {
		return dispatchMsg(fn())
	}
}

func notifyCmd(n *render.Notifier, frame render.Frame) tea.Cmd {
	return func() tea.Msg {
		return cueMsg{err: n.Notify(frame)}
	}
}

// Run starts the Bubble Tea program. Log output goes to the configured log
// file for the lifetime of the program.
func Run(opts Options) error {
	if opts.Config != nil && opts.Config.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Config.LogFile), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := tea.LogToFile(opts.Config.LogFile, "tomate")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	}

	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.notifier.Stop()
	quietBrowser()
	p := tea.NewProgram(m, tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		if m.ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
