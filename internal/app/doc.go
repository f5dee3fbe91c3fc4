// Package app is the composition root for tomate.
//
// Bootstrap loads config and prefs, builds the timer client, the shared
// state.Store, the poll gate, the sound notifier and the command dispatcher.
// Run then hands that runtime to either the Bubble Tea UI or, with Plain
// set, a line-oriented display driven by poll.Loop.
//
//	Run()
//	 ├─> config.Load()      ~/.config/tomate/config.toml
//	 ├─> prefs.Load()       theme, volume (read once)
//	 ├─> timer.NewClient()  HTTP client for the timer server
//	 ├─> sound player       external player, or the terminal bell
//	 └─> ui.Run() | RunPlain()
//
// Configuration errors are fatal. Everything after startup is recoverable:
// failed polls and commands are logged and the loop keeps going.
package app
