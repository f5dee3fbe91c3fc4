package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything tomate needs to reach and render the timer server.
type Config struct {
	Server            string
	PollInterval      time.Duration
	FrameInterval     time.Duration
	RequestTimeout    time.Duration
	UploadsPath       string
	DefaultBackground string
	SoundsDir         string
	Player            string
	PlaylistURL       string
	LogFile           string
}

const (
	defaultConfigPath        = "~/.config/tomate/config.toml"
	defaultServer            = "127.0.0.1:5000"
	defaultPollInterval      = time.Second
	defaultFrameInterval     = 16 * time.Millisecond
	defaultUploadsPath       = "/static/uploads/"
	defaultDefaultBackground = "/static/default_backgrounds/default_bg.jpg"
	defaultSoundsDir         = "~/.local/share/tomate/sounds"
	defaultPlaylistURL       = "https://open.spotify.com/playlist/0Ec6DatLDguXsx4UDntZbw"
	defaultLogFile           = "~/.local/state/tomate/tomate.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Server:            defaultServer,
		PollInterval:      defaultPollInterval,
		FrameInterval:     defaultFrameInterval,
		UploadsPath:       defaultUploadsPath,
		DefaultBackground: defaultDefaultBackground,
		SoundsDir:         mustExpand(defaultSoundsDir),
		PlaylistURL:       defaultPlaylistURL,
		LogFile:           mustExpand(defaultLogFile),
	}
}

// Load locates and parses the tomate config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Server            string `toml:"server"`
		PollIntervalMS    int    `toml:"poll_interval_ms"`
		FrameIntervalMS   int    `toml:"frame_interval_ms"`
		RequestTimeoutMS  int    `toml:"request_timeout_ms"`
		UploadsPath       string `toml:"uploads_path"`
		DefaultBackground string `toml:"default_background"`
		SoundsDir         string `toml:"sounds_dir"`
		Player            string `toml:"player"`
		PlaylistURL       string `toml:"playlist_url"`
		LogFile           string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Server = orDefault(raw.Server, defaultServer)
	if raw.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	if raw.FrameIntervalMS > 0 {
		cfg.FrameInterval = time.Duration(raw.FrameIntervalMS) * time.Millisecond
	}
	if raw.RequestTimeoutMS > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutMS) * time.Millisecond
	}
	cfg.UploadsPath = orDefault(raw.UploadsPath, defaultUploadsPath)
	if !strings.HasSuffix(cfg.UploadsPath, "/") {
		cfg.UploadsPath += "/"
	}
	cfg.DefaultBackground = orDefault(raw.DefaultBackground, defaultDefaultBackground)
	cfg.SoundsDir = mustExpand(orDefault(raw.SoundsDir, defaultSoundsDir))
	cfg.Player = strings.TrimSpace(raw.Player)
	cfg.PlaylistURL = orDefault(raw.PlaylistURL, defaultPlaylistURL)
	cfg.LogFile = mustExpand(orDefault(raw.LogFile, defaultLogFile))

	return cfg, nil
}

func orDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
