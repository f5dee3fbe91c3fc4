package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tomate/internal/render"
	"github.com/five82/tomate/internal/timer"
)

// renderMain renders the header, the timer panel and the footer.
func (m Model) renderMain() string {
	sections := []string{m.renderHeader()}

	body := m.renderTimer()
	if m.showSettings {
		body = lipgloss.JoinHorizontal(lipgloss.Center, body, "  ", m.renderSettings())
	}

	bodyHeight := m.height - 3
	if m.showLogs {
		bodyHeight -= m.logViewport.Height + 1
	}
	sections = append(sections, lipgloss.Place(m.width, max(bodyHeight, 1), lipgloss.Center, lipgloss.Center, body))

	if m.showLogs {
		sections = append(sections, m.renderLogPane())
	}
	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTimer renders the mode tabs, the clock, the progress marks and the
// background in use.
func (m Model) renderTimer() string {
	styles := m.theme.Styles()
	class := m.screen.themeClass
	accent := styles.ModeColor(class)

	clock := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 4).
		Render(styles.ModeText(class).Render(spaced(m.screen.clock)))

	progress := render.FormatProgress(m.screen.progress, "●")
	if progress == "" {
		progress = styles.FaintText.Render("no sessions yet")
	} else {
		progress = styles.ModeText(class).Render(progress)
	}

	lines := []string{
		m.renderModeTabs(),
		"",
		clock,
		"",
		progress,
	}
	if m.screen.background != "" {
		lines = append(lines, styles.FaintText.Render("bg "+truncateMiddle(m.screen.background, 48)))
	}
	if m.flash != "" {
		style := styles.MutedText
		if m.flashErr {
			style = styles.DangerText
		}
		lines = append(lines, "", style.Render(m.flash))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderModeTabs highlights the active mode.
func (m Model) renderModeTabs() string {
	styles := m.theme.Styles()
	tabs := make([]string, 0, 3)
	for i, mode := range timer.Modes() {
		label := string(rune('1'+i)) + " " + mode.Label()
		if mode == m.screen.mode {
			tabs = append(tabs, styles.ModeBadge(render.ThemeClass(mode)).Render(label))
			continue
		}
		tabs = append(tabs, lipgloss.NewStyle().Padding(0, 1).Inherit(styles.MutedText).Render(label))
	}
	return strings.Join(tabs, " ")
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// spaced widens the clock so it reads at a distance.
func spaced(clock string) string {
	return strings.Join(strings.Split(clock, ""), " ")
}
