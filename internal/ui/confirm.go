package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderConfirmClose asks before quitting. A running timer keeps running on
// the server either way.
func (m Model) renderConfirmClose() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Close tomate?"))
	b.WriteString("\n")
	if m.frame.Running {
		b.WriteString("\n  " + styles.MutedText.Render("The timer keeps running on the server."))
		b.WriteString("\n")
	}
	b.WriteString("\n  " + styles.WarningText.Render("[Enter]") + " Close   " + styles.WarningText.Render("[Esc]") + " Cancel")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()))
}
