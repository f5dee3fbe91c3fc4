// Package config loads the tomate client configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/tomate/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Default Values
//
//   - server: 127.0.0.1:5000
//   - poll_interval_ms: 1000 (at most one /status request per interval)
//   - frame_interval_ms: 16 (render loop tick)
//   - request_timeout_ms: 0 (no client-side timeout)
//   - uploads_path: /static/uploads/
//   - default_background: /static/default_backgrounds/default_bg.jpg
//   - sounds_dir: ~/.local/share/tomate/sounds
//   - player: empty (auto-detect a command line player, else terminal bell)
//   - playlist_url: the focus playlist opened by the link key
//   - log_file: ~/.local/state/tomate/tomate.log (TUI mode only)
//
// # Example
//
//	server = "192.168.1.20:5000"
//	poll_interval_ms = 1000
//	player = "mpv --no-video --volume={percent} {file}"
//
// Paths beginning with ~ are expanded against the user's home directory and
// made absolute. The client preference for volume lives in the prefs
// package, not here.
package config
