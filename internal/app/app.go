package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/five82/tomate/internal/config"
	"github.com/five82/tomate/internal/dispatch"
	"github.com/five82/tomate/internal/poll"
	"github.com/five82/tomate/internal/prefs"
	"github.com/five82/tomate/internal/render"
	"github.com/five82/tomate/internal/sound"
	"github.com/five82/tomate/internal/state"
	"github.com/five82/tomate/internal/timer"
	"github.com/five82/tomate/internal/ui"
)

// Options configure the tomate application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tomate/prefs.toml
	Server     string // overrides the configured server when set
	Plain      bool   // line output instead of the full-screen UI
}

// Runtime holds everything wired from config and prefs.
type Runtime struct {
	Config     config.Config
	Prefs      prefs.Prefs
	PrefsPath  string
	Client     *timer.Client
	Store      *state.Store
	Poller     *poll.Poller
	Gate       *poll.Gate
	Notifier   *render.Notifier
	Dispatcher *dispatch.Dispatcher
	Assets     render.Assets
}

// Bootstrap loads configuration and preferences and builds the client
// stack. bell receives the terminal bell when no audio player is available.
func Bootstrap(opts Options, bell io.Writer) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load tomate config: %w", err)
	}
	if server := strings.TrimSpace(opts.Server); server != "" {
		cfg.Server = server
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("load prefs: %v", err)
	}

	client, err := timer.NewClient(cfg.Server, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("init timer client: %w", err)
	}

	store := &state.Store{}
	notifier := render.NewNotifier(newPlayer(cfg, bell), userPrefs.Volume)

	return &Runtime{
		Config:     cfg,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		Client:     client,
		Store:      store,
		Poller:     poll.NewPoller(client, store),
		Gate:       poll.NewGate(cfg.PollInterval),
		Notifier:   notifier,
		Dispatcher: dispatch.New(client, notifier),
		Assets: render.Assets{
			UploadsPath:       cfg.UploadsPath,
			DefaultBackground: cfg.DefaultBackground,
		},
	}, nil
}

func newPlayer(cfg config.Config, bell io.Writer) sound.Player {
	player, err := sound.NewExecPlayer(cfg.SoundsDir, cfg.Player)
	if err != nil {
		if !errors.Is(err, sound.ErrNoPlayer) {
			log.Printf("audio player: %v", err)
		}
		return sound.NewBellPlayer(bell)
	}
	return player
}

// Run boots tomate until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	rt, err := Bootstrap(opts, os.Stderr)
	if err != nil {
		return err
	}

	if opts.Plain {
		display, err := NewPlainDisplay(os.Stdout)
		if err != nil {
			return err
		}
		RunPlain(ctx, rt, display)
		return nil
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Config:     &rt.Config,
		Poller:     rt.Poller,
		Gate:       rt.Gate,
		Store:      rt.Store,
		Dispatcher: rt.Dispatcher,
		Notifier:   rt.Notifier,
		Assets:     rt.Assets,
		ThemeName:  rt.Prefs.Theme,
		PrefsPath:  rt.PrefsPath,
	})
}

// RunPlain renders status lines until ctx is cancelled.
func RunPlain(ctx context.Context, rt *Runtime, display *PlainDisplay) {
	defer rt.Notifier.Stop()
	engine := render.NewEngine(rt.Assets)
	poll.Loop(ctx, rt.Config.FrameInterval, rt.Gate, rt.Poller.Poll, func(res poll.Result) {
		if !res.OK() {
			display.Offline(rt.Store.Snapshot())
			return
		}
		frame := engine.Apply(res.Snapshot)
		render.Present(frame, display)
		display.Flush(frame)
		_ = rt.Notifier.Notify(frame)
	})
}
