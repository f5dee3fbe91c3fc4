// Package prefs handles tomate user preferences persistence.
// Preferences are stored in ~/.config/tomate/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for tomate.
type Prefs struct {
	Theme  string  `toml:"theme"`
	Volume float64 `toml:"volume"`
}

const (
	defaultPrefsPath = "~/.config/tomate/prefs.toml"
	defaultTheme     = "Dracula"
	// DefaultVolume is used when no volume preference has been stored.
	DefaultVolume = 0.1
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, Volume: DefaultVolume}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if missing.
// The volume is read here once at startup; nothing in tomate writes it back.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Defaults(), nil // Graceful degradation
	}

	var raw struct {
		Theme  string   `toml:"theme"`
		Volume *float64 `toml:"volume"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	prefs := Defaults()
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		prefs.Theme = theme
	}
	if raw.Volume != nil {
		prefs.Volume = ClampVolume(*raw.Volume)
	}
	return prefs, nil
}

// ClampVolume bounds v to [0, 1].
func ClampVolume(v float64) float64 {
	switch {
	case v != v: // NaN
		return DefaultVolume
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// SaveTheme stores the theme name, creating directories as needed. Every
// other key in the file, including volume, is preserved as found.
func SaveTheme(path, theme string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	doc := map[string]any{}
	existing, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := toml.Unmarshal(existing, &doc); err != nil {
			return fmt.Errorf("parse prefs: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("read prefs: %w", err)
	}
	doc["theme"] = theme

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
