package logtail

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles colour the parts of a log line.
type Styles struct {
	Prefix    lipgloss.Style
	Timestamp lipgloss.Style
	Message   lipgloss.Style
	Failure   lipgloss.Style
}

// DefaultStyles suits dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Prefix:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2")),
		Failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
}

// Matches the standard logger layout: optional prefix, date, time, message.
var linePattern = regexp.MustCompile(`^(?:(\S+) )?(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)?) (.*)$`)

var failureWords = []string{"failed", "error", "refused", "timeout"}

// ColorizeLine styles one log line. Lines that do not look like logger
// output are returned unchanged.
func ColorizeLine(line string, s Styles) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	var b strings.Builder
	if m[1] != "" {
		b.WriteString(s.Prefix.Render(m[1]))
		b.WriteByte(' ')
	}
	b.WriteString(s.Timestamp.Render(m[2]))
	b.WriteByte(' ')
	if isFailure(m[3]) {
		b.WriteString(s.Failure.Render(m[3]))
	} else {
		b.WriteString(s.Message.Render(m[3]))
	}
	return b.String()
}

// ColorizeLines styles every line.
func ColorizeLines(lines []string, s Styles) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ColorizeLine(line, s)
	}
	return out
}

func isFailure(msg string) bool {
	lower := strings.ToLower(msg)
	for _, word := range failureWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
