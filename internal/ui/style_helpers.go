package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle paints header segments and the gaps between them on one surface
// color, so ANSI resets between styled words do not leave holes.
type BgStyle struct {
	fill lipgloss.Style
}

// NewBgStyle creates a background helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	return BgStyle{fill: lipgloss.NewStyle().Background(lipgloss.Color(bgColor))}
}

// Render renders text with style on the shared background, spaces included.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	word := style.Inherit(b.fill)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = word.Render(w)
		}
	}
	return strings.Join(words, b.fill.Render(" "))
}

// Spaces returns n filled spaces; n <= 0 returns "".
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Join joins segments with a filled separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.fill.Render(sep))
}
