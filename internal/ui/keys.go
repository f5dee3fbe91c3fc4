package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Timer
	Start      key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Pomodoro   key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding

	// Window
	Fullscreen key.Binding
	Settings   key.Binding
	Logs       key.Binding
	Close      key.Binding
	ForceQuit  key.Binding

	// Settings panel
	Upload           key.Binding
	RemoveBackground key.Binding
	OpenPlaylist     key.Binding
	CopyPlaylist     key.Binding
	CycleTheme       key.Binding

	// General
	Help    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Up      key.Binding
	Down    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "Start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset"),
		),
		Pomodoro: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Pomodoro"),
		),
		ShortBreak: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Short break"),
		),
		LongBreak: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Long break"),
		),

		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Fullscreen"),
		),
		Settings: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "Settings"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log pane"),
		),
		Close: key.NewBinding(
			key.WithKeys("q", "e"),
			key.WithHelp("q", "Close"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit now"),
		),

		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Upload background"),
		),
		RemoveBackground: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove background"),
		),
		OpenPlaylist: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open playlist"),
		),
		CopyPlaylist: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy playlist link"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc/n", "Cancel"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll log up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll log down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Pomodoro, k.ShortBreak, k.LongBreak, k.Settings, k.Help, k.Close}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset},
		{k.Pomodoro, k.ShortBreak, k.LongBreak},
		{k.Settings, k.Upload, k.RemoveBackground, k.OpenPlaylist, k.CopyPlaylist, k.CycleTheme},
		{k.Logs, k.Up, k.Down},
		{k.Fullscreen, k.Help, k.Close, k.ForceQuit},
	}
}
