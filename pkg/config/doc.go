// Package config loads gridsnap's TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/gridsnap/config.toml (falling back to
// ~/.config/gridsnap/config.toml) unless a path is given explicitly. A
// missing file is not an error: every field has a default.
//
//	[grid]
//	snap = 20
//	min_size = 200
//	max_size = 2000
//	id_prefix = "unit-"
//
//	[editor]
//	cell_width = 10       # pixels per terminal column
//	cell_height = 20      # pixels per terminal row
//	double_click_ms = 400
//
//	[server]
//	addr = "127.0.0.1:8080"
//
//	[redis]
//	addr = ""             # empty disables the notification relay
//	channel = "gridsnap:events"
//
// Command-line flags override file values; that merging happens in the CLI.
package config
