package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tomate/internal/logtail"
)

const logTailLines = 200

type logLinesMsg []string

type logErrorMsg struct{ err error }

func readLogsCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logLinesMsg(lines)
	}
}

func logPaneHeight(termHeight int) int {
	return max(termHeight/3, 3)
}

func (m *Model) setLogLines(lines []string) {
	atBottom := m.logViewport.AtBottom()
	if len(lines) == 0 {
		m.logViewport.SetContent(m.theme.Styles().FaintText.Render("No log output yet"))
		return
	}
	m.logViewport.SetContent(strings.Join(logtail.ColorizeLines(lines, m.logStyles()), "\n"))
	if atBottom {
		m.logViewport.GotoBottom()
	}
}

func (m Model) logStyles() logtail.Styles {
	styles := m.theme.Styles()
	return logtail.Styles{
		Prefix:    styles.FaintText,
		Timestamp: styles.MutedText,
		Message:   styles.Text,
		Failure:   styles.DangerText,
	}
}

func (m Model) renderLogPane() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("Log") + " " + styles.FaintText.Render(truncateMiddle(m.logFile, 60))
	return title + "\n" + m.logViewport.View()
}
