package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/five82/tomate/internal/timer"
)

var errExitCalled = errors.New("exit called")

func newParser(t *testing.T, cli *CLI) (*kong.Kong, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	k, err := kong.New(cli,
		kong.Name("tomate"),
		kong.Vars{"version": "test"},
		kong.Writers(&buf, &buf),
		kong.Exit(func(int) { panic(errExitCalled) }),
	)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	return k, &buf
}

func TestParse_DefaultsToWatch(t *testing.T) {
	var cli CLI
	k, _ := newParser(t, &cli)
	kctx, err := k.Parse([]string{"--server", "10.0.0.2:5000", "--plain"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := kctx.Command(); got != "watch" {
		t.Fatalf("Command() = %q, want watch", got)
	}
	if cli.Server != "10.0.0.2:5000" || !cli.Plain {
		t.Fatalf("globals = %+v, want server override and plain", cli.Globals)
	}
}

func TestParse_Commands(t *testing.T) {
	image := filepath.Join(t.TempDir(), "forest.png")
	if err := os.WriteFile(image, []byte("png"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"status"}, "status"},
		{[]string{"status", "-o", "yaml"}, "status"},
		{[]string{"start"}, "start"},
		{[]string{"pause"}, "pause"},
		{[]string{"reset"}, "reset"},
		{[]string{"switch", "long_break"}, "switch <mode>"},
		{[]string{"upload", image}, "upload <file>"},
		{[]string{"remove-background"}, "remove-background"},
	}
	for _, tc := range cases {
		var cli CLI
		k, _ := newParser(t, &cli)
		kctx, err := k.Parse(tc.args)
		if err != nil {
			t.Fatalf("Parse(%v): %v", tc.args, err)
		}
		if got := kctx.Command(); got != tc.want {
			t.Fatalf("Parse(%v).Command() = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestParse_RejectsBadInput(t *testing.T) {
	bad := [][]string{
		{"switch", "lunch"},
		{"status", "-o", "xml"},
		{"upload", filepath.Join(t.TempDir(), "missing.png")},
	}
	for _, args := range bad {
		var cli CLI
		k, _ := newParser(t, &cli)
		if _, err := k.Parse(args); err == nil {
			t.Fatalf("Parse(%v) returned nil error", args)
		}
	}
}

func TestWriteStatus_Formats(t *testing.T) {
	snap := timer.Snapshot{RemainingSeconds: 1500, Mode: timer.ModePomodoro, CompletedCount: 5, Running: true}

	var text bytes.Buffer
	if err := writeStatus(&text, snap, "text"); err != nil {
		t.Fatalf("writeStatus text: %v", err)
	}
	for _, want := range []string{"Pomodoro", "25:00", "running", "[●●●●] [●]", "background  default"} {
		if !strings.Contains(text.String(), want) {
			t.Fatalf("text output = %q, want it to contain %q", text.String(), want)
		}
	}

	var js bytes.Buffer
	if err := writeStatus(&js, snap, "json"); err != nil {
		t.Fatalf("writeStatus json: %v", err)
	}
	if !strings.Contains(js.String(), `"remaining_seconds": 1500`) || !strings.Contains(js.String(), `"mode": "pomodoro"`) {
		t.Fatalf("json output = %q", js.String())
	}

	var ym bytes.Buffer
	if err := writeStatus(&ym, snap, "yaml"); err != nil {
		t.Fatalf("writeStatus yaml: %v", err)
	}
	if !strings.Contains(ym.String(), "completed_count: 5") || !strings.Contains(ym.String(), "mode: pomodoro") {
		t.Fatalf("yaml output = %q", ym.String())
	}
}

func newTestServer(t *testing.T) (*httptest.Server, func() []string) {
	t.Helper()
	var mu sync.Mutex
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/status" {
			_, _ = w.Write([]byte(`{"remaining_time": 300, "is_running": false, "current_mode": "short_break", "pomodoro_count": 1, "background_image": null}`))
			return
		}
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), paths...)
	}
}

func testGlobals(t *testing.T, server string, out *bytes.Buffer) *Globals {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("player = \"tomate-test-missing-player\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return &Globals{
		Config: cfgPath,
		Prefs:  filepath.Join(dir, "prefs.toml"),
		Server: server,
		out:    out,
	}
}

func TestStatusCmd_PrintsSnapshot(t *testing.T) {
	srv, _ := newTestServer(t)
	var out bytes.Buffer
	g := testGlobals(t, srv.URL, &out)

	if err := (&StatusCmd{Output: "text"}).Run(g); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Short Break") || !strings.Contains(out.String(), "05:00") {
		t.Fatalf("output = %q, want short break at 05:00", out.String())
	}
}

func TestSwitchCmd_PomodoroFromBreakResumes(t *testing.T) {
	srv, requests := newTestServer(t)
	var out bytes.Buffer
	g := testGlobals(t, srv.URL, &out)

	if err := (&SwitchCmd{Mode: "pomodoro"}).Run(g); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"GET /status", "POST /switch_to_pomodoro", "POST /start"}
	got := requests()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("requests = %v, want %v", got, want)
	}
	if strings.TrimSpace(out.String()) != "switch_to_pomodoro" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestPauseCmd_ReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	var out bytes.Buffer
	g := testGlobals(t, srv.URL, &out)

	err := (&PauseCmd{}).Run(g)
	var statusErr *timer.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("Run error = %v, want StatusError 500", err)
	}
}
