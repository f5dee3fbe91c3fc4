package ui

import (
	"fmt"
	"io"
	"log"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

// quietBrowser stops the opener's own output from drawing over the UI.
func quietBrowser() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

type linkMsg struct {
	copied bool
	url    string
	err    error
}

func openLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return linkMsg{url: url, err: browser.OpenURL(url)}
	}
}

func copyLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return linkMsg{copied: true, url: url, err: clipboard.WriteAll(url)}
	}
}

func (m *Model) handleLink(msg linkMsg) {
	switch {
	case msg.err != nil && msg.copied:
		log.Printf("copy playlist link: %v", msg.err)
		m.flash, m.flashErr = fmt.Sprintf("Copy failed: %v", msg.err), true
	case msg.err != nil:
		log.Printf("open playlist: %v", msg.err)
		m.flash, m.flashErr = fmt.Sprintf("Open failed: %v", msg.err), true
	case msg.copied:
		m.flash, m.flashErr = "Playlist link copied", false
	default:
		m.flash, m.flashErr = "Opened playlist", false
	}
}
