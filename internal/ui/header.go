package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	iconExpand   = "⤢"
	iconCompress = "⤡"
)

// fullscreenIcon shows the action the fullscreen key will take.
func (m Model) fullscreenIcon() string {
	if m.fullscreen {
		return iconCompress
	}
	return iconExpand
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("tomate", styles.Logo)}

	switch {
	case m.snapshot.IsOffline() || (!m.snapshot.HasStatus && m.snapshot.LastError != nil):
		parts = append(parts,
			bg.Render("● "+classifyConnectionError(m.snapshot.LastError), styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
		)
	case !m.snapshot.HasStatus:
		parts = append(parts, bg.Render("Connecting to "+m.server+"...", styles.WarningText.Bold(true)))
	case m.frame.Running:
		parts = append(parts, bg.Render("● RUNNING", styles.SuccessText))
	default:
		parts = append(parts, bg.Render("● PAUSED", styles.MutedText))
	}

	parts = append(parts, bg.Render(truncateMiddle(m.server, 32), styles.FaintText))
	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format(time.TimeOnly), styles.MutedText))
	}

	left := bg.Join(parts, "  ")
	right := bg.Render(m.fullscreenIcon(), styles.AccentText)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}
