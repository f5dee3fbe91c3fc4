package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server != defaultServer {
		t.Fatalf("Server = %q, want %q", cfg.Server, defaultServer)
	}
	if cfg.PollInterval != time.Second {
		t.Fatalf("PollInterval = %v, want 1s", cfg.PollInterval)
	}
	if cfg.FrameInterval != defaultFrameInterval {
		t.Fatalf("FrameInterval = %v, want %v", cfg.FrameInterval, defaultFrameInterval)
	}
	if cfg.RequestTimeout != 0 {
		t.Fatalf("RequestTimeout = %v, want 0 (no timeout)", cfg.RequestTimeout)
	}
	if cfg.UploadsPath != "/static/uploads/" {
		t.Fatalf("UploadsPath = %q, want /static/uploads/", cfg.UploadsPath)
	}
	if cfg.DefaultBackground != "/static/default_backgrounds/default_bg.jpg" {
		t.Fatalf("DefaultBackground = %q", cfg.DefaultBackground)
	}

	wantSounds, err := expandPath(defaultSoundsDir)
	if err != nil {
		t.Fatalf("expandPath(defaultSoundsDir) returned error: %v", err)
	}
	if cfg.SoundsDir != wantSounds {
		t.Fatalf("SoundsDir = %q, want %q", cfg.SoundsDir, wantSounds)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
server = "  10.0.0.5:8080  "
poll_interval_ms = 500
frame_interval_ms = 33
request_timeout_ms = 2500
uploads_path = "/media/bg"
sounds_dir = "  ~/.sounds  "
player = " mpv --volume={percent} {file} "
playlist_url = "https://example.com/list"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server != "10.0.0.5:8080" {
		t.Fatalf("Server = %q, want %q", cfg.Server, "10.0.0.5:8080")
	}
	if cfg.PollInterval != 500*time.Millisecond || cfg.FrameInterval != 33*time.Millisecond || cfg.RequestTimeout != 2500*time.Millisecond {
		t.Fatalf("intervals = %v/%v/%v, want 500ms/33ms/2.5s", cfg.PollInterval, cfg.FrameInterval, cfg.RequestTimeout)
	}
	if cfg.UploadsPath != "/media/bg/" {
		t.Fatalf("UploadsPath = %q, want trailing slash added", cfg.UploadsPath)
	}
	if cfg.SoundsDir != filepath.Join(home, ".sounds") {
		t.Fatalf("SoundsDir = %q, want %q", cfg.SoundsDir, filepath.Join(home, ".sounds"))
	}
	if cfg.Player != "mpv --volume={percent} {file}" {
		t.Fatalf("Player = %q", cfg.Player)
	}
	if cfg.PlaylistURL != "https://example.com/list" {
		t.Fatalf("PlaylistURL = %q", cfg.PlaylistURL)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
server = "   "
poll_interval_ms = 0
default_background = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server != defaultServer {
		t.Fatalf("Server = %q, want %q", cfg.Server, defaultServer)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if cfg.DefaultBackground != defaultDefaultBackground {
		t.Fatalf("DefaultBackground = %q, want %q", cfg.DefaultBackground, defaultDefaultBackground)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`server = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
