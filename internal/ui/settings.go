package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tomate/internal/dispatch"
	"github.com/five82/tomate/internal/timer"
)

func newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = timer.AllowedImageTypes()
	fp.ShowHidden = false
	fp.ShowSize = true
	fp.ShowPermissions = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	return fp
}

func pickerHeight(termHeight int) int {
	return max(termHeight-6, 3)
}

// openPicker shows the file browser unless an upload is already running.
func (m Model) openPicker() (tea.Model, tea.Cmd) {
	if m.uploading {
		return m, nil
	}
	m.picking = true
	return m, m.picker.Init()
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.picking = false
		return m.startUpload(path)
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.flash = fmt.Sprintf("%s is not a png, jpg or gif image", filepath.Base(path))
		m.flashErr = true
	}
	return m, cmd
}

// startUpload disables the upload trigger until the request settles.
func (m Model) startUpload(path string) (tea.Model, tea.Cmd) {
	if m.uploading {
		return m, nil
	}
	m.uploading = true
	m.flash = "Uploading " + filepath.Base(path) + "..."
	m.flashErr = false
	d, ctx := m.dispatcher, m.ctx
	return m, dispatchCmd(func() dispatch.Result { return d.UploadBackground(ctx, path) })
}

func (m Model) renderPicker() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("Choose a background image")
	dir := styles.MutedText.Render(truncateMiddle(m.picker.CurrentDirectory, max(m.width-4, 10)))
	hint := styles.FaintText.Render("enter select • h/backspace up • esc cancel")
	return lipgloss.JoinVertical(lipgloss.Left, title, dir, "", m.picker.View(), hint)
}

func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	accent := styles.ModeColor(m.screen.themeClass)

	row := func(label, value string) string {
		return styles.MutedText.Width(12).Render(label) + styles.Text.Render(value)
	}

	uploadLabel := "u  Upload"
	if m.uploading {
		uploadLabel = "Uploading..."
	}
	uploadStyle := styles.WarningText
	if m.uploading {
		uploadStyle = styles.FaintText
	}

	volume := 0.0
	if m.notifier != nil {
		volume = m.notifier.Volume()
	}

	lines := []string{
		styles.AccentText.Bold(true).Render("Settings"),
		"",
		row("Server", m.server),
		row("Volume", fmt.Sprintf("%d%%", int(volume*100+0.5))),
		row("Theme", m.theme.Name),
		row("Background", truncateMiddle(m.screen.background, 40)),
		row("Playlist", truncateMiddle(m.playlistURL, 40)),
		"",
		uploadStyle.Render(uploadLabel) + "   " + styles.WarningText.Render("x  Remove background"),
		styles.WarningText.Render("o  Open playlist") + "   " + styles.WarningText.Render("y  Copy link"),
		styles.WarningText.Render("T  Cycle theme"),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
