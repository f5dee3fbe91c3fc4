package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/five82/tomate/internal/app"
	"github.com/five82/tomate/internal/dispatch"
	"github.com/five82/tomate/internal/render"
	"github.com/five82/tomate/internal/timer"
)

var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config string `help:"Config file path (default ~/.config/tomate/config.toml)." placeholder:"PATH"`
	Prefs  string `help:"Preferences file path (default ~/.config/tomate/prefs.toml)." placeholder:"PATH"`
	Server string `help:"Timer server host:port or URL. Overrides the config file." short:"s"`
	Plain  bool   `help:"Force plain line output even if stdout is a TTY."`

	ctx context.Context
	out io.Writer
}

func (g *Globals) context() context.Context {
	if g.ctx == nil {
		return context.Background()
	}
	return g.ctx
}

func (g *Globals) stdout() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}

func (g *Globals) options() app.Options {
	return app.Options{ConfigPath: g.Config, PrefsPath: g.Prefs, Server: g.Server, Plain: g.Plain}
}

func (g *Globals) runtime() (*app.Runtime, error) {
	return app.Bootstrap(g.options(), os.Stderr)
}

// CLI is the top-level command structure for tomate.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`

	Watch            WatchCmd            `cmd:"" default:"1" help:"Show the live timer (default)."`
	Status           StatusCmd           `cmd:"" help:"Print the current timer status."`
	Start            StartCmd            `cmd:"" help:"Start or resume the timer."`
	Pause            PauseCmd            `cmd:"" help:"Pause the timer."`
	Reset            ResetCmd            `cmd:"" help:"Reset to a fresh focus session."`
	Switch           SwitchCmd           `cmd:"" help:"Switch timer mode."`
	Upload           UploadCmd           `cmd:"" help:"Upload a background image."`
	RemoveBackground RemoveBackgroundCmd `cmd:"" name:"remove-background" help:"Restore the default background."`
}

// WatchCmd runs the interactive display.
type WatchCmd struct{}

// Run starts the full-screen UI, or plain output when stdout is not a terminal.
func (c *WatchCmd) Run(g *Globals) error {
	opts := g.options()
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		opts.Plain = true
	}
	return app.Run(g.context(), opts)
}

// StatusCmd prints one status snapshot.
type StatusCmd struct {
	Output string `short:"o" help:"Output format: text, json or yaml." enum:"text,json,yaml" default:"text"`
}

// Run fetches and prints the status.
func (c *StatusCmd) Run(g *Globals) error {
	rt, err := g.runtime()
	if err != nil {
		return err
	}
	status, err := rt.Client.FetchStatus(g.context())
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	return writeStatus(g.stdout(), status.Snapshot(), c.Output)
}

func writeStatus(w io.Writer, snap timer.Snapshot, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		state := "paused"
		if snap.Running {
			state = "running"
		}
		progress := render.FormatProgress(render.ProgressGroups(snap.CompletedCount), "")
		if progress == "" {
			progress = "-"
		}
		bg := snap.BackgroundImage
		if bg == "" {
			bg = "default"
		}
		_, err := fmt.Fprintf(w, "%-11s %s  %s\nsessions    %d  %s\nbackground  %s\n",
			snap.Mode.Label(), render.FormatClock(snap.RemainingSeconds), state,
			snap.CompletedCount, progress, bg)
		return err
	}
}

// StartCmd starts the timer.
type StartCmd struct{}

func (c *StartCmd) Run(g *Globals) error {
	return runAction(g, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result { return d.Start(ctx) })
}

// PauseCmd pauses the timer.
type PauseCmd struct{}

func (c *PauseCmd) Run(g *Globals) error {
	return runAction(g, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result { return d.Pause(ctx) })
}

// ResetCmd resets the timer.
type ResetCmd struct{}

func (c *ResetCmd) Run(g *Globals) error {
	return runAction(g, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result { return d.Reset(ctx) })
}

// SwitchCmd switches the timer mode.
type SwitchCmd struct {
	Mode string `arg:"" help:"Mode to switch to: pomodoro, short_break or long_break." enum:"pomodoro,short_break,long_break"`
}

func (c *SwitchCmd) Run(g *Globals) error {
	mode := timer.ParseMode(c.Mode)
	return runAction(g, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result { return d.Switch(ctx, mode) })
}

// UploadCmd uploads a background image.
type UploadCmd struct {
	File string `arg:"" type:"existingfile" help:"PNG, JPG or GIF image, at most 20MB."`
}

func (c *UploadCmd) Run(g *Globals) error {
	return runAction(g, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result {
		return d.UploadBackground(ctx, c.File)
	})
}

// RemoveBackgroundCmd clears the uploaded background.
type RemoveBackgroundCmd struct{}

func (c *RemoveBackgroundCmd) Run(g *Globals) error {
	return runAction(g, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result { return d.RemoveBackground(ctx) })
}

func runAction(g *Globals, action func(context.Context, *dispatch.Dispatcher) dispatch.Result) error {
	rt, err := g.runtime()
	if err != nil {
		return err
	}
	res := action(g.context(), rt.Dispatcher)
	if res.Err != nil {
		return res.Err
	}
	switch {
	case res.Skipped:
		fmt.Fprintln(g.stdout(), "already in a focus session")
	case res.Filename != "":
		fmt.Fprintf(g.stdout(), "%s: %s\n", res.Action, res.Filename)
	default:
		fmt.Fprintln(g.stdout(), res.Action)
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("tomate"),
		kong.Description("Terminal client for a Pomodoro timer server."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tomate: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	cli.Globals.ctx = ctx
	if err := kctx.Run(&cli.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "tomate: %v\n", err)
		return 1
	}
	return 0
}
