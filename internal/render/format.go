package render

import (
	"fmt"
	"strings"

	"github.com/five82/tomate/internal/timer"
)

// SessionsPerCycle is the number of focus sessions grouped into one progress cycle.
const SessionsPerCycle = 4

// FormatClock renders seconds as MM:SS. Minutes are not wrapped into hours,
// so values over an hour render as e.g. 75:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ProgressGroups splits count completed sessions into cycles of up to four.
// It returns ceil(count/4) entries; every entry is 4 except possibly the last.
func ProgressGroups(count int) []int {
	if count <= 0 {
		return nil
	}
	groups := make([]int, 0, (count+SessionsPerCycle-1)/SessionsPerCycle)
	for remaining := count; remaining > 0; remaining -= SessionsPerCycle {
		groups = append(groups, min(SessionsPerCycle, remaining))
	}
	return groups
}

// FormatProgress renders groups as "[●●●●] [●]".
func FormatProgress(groups []int, mark string) string {
	if mark == "" {
		mark = "●"
	}
	parts := make([]string, len(groups))
	for i, n := range groups {
		parts[i] = "[" + strings.Repeat(mark, n) + "]"
	}
	return strings.Join(parts, " ")
}

// Assets locates background images on the server.
type Assets struct {
	UploadsPath       string
	DefaultBackground string
}

// BackgroundPath resolves an uploaded image name, falling back to the default asset.
func BackgroundPath(image string, assets Assets) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return assets.DefaultBackground
	}
	uploads := assets.UploadsPath
	if uploads != "" && !strings.HasSuffix(uploads, "/") {
		uploads += "/"
	}
	return uploads + image
}

// ThemeClass returns the mode-specific page theme name, e.g. "short-break-mode".
func ThemeClass(mode timer.Mode) string {
	if mode == timer.ModeUnknown {
		return ""
	}
	return strings.ReplaceAll(string(mode), "_", "-") + "-mode"
}
