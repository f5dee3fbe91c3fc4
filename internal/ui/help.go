package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the key reference with the current mode and poll
// cadence above it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	class := m.screen.themeClass

	title := styles.ModeText(class).Render("tomate keys")
	context := styles.MutedText.Render(fmt.Sprintf("%s · polling %s every %s",
		m.frame.Mode.Label(), truncateMiddle(m.server, 28), m.gate.Interval()))

	full := m.help
	full.ShowAll = true

	body := strings.Join([]string{
		title,
		context,
		"",
		full.FullHelpView(m.keys.FullHelp()),
		"",
		styles.FaintText.Render("any key closes"),
	}, "\n")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.ModeColor(class))).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		modal.Render(body),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
