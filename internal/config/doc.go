// Package config loads celledit configuration.
//
// Configuration is read from a TOML or YAML file, chosen by extension,
// then overridden by CELLEDIT_* environment variables:
//
//	[editor]
//	auto_pair = true
//	match_brackets = true
//	tab_width = 4
//	terminators = ";$"
//
//	[clipboard]
//	backend = "system"   # or "memory"
//
//	[log]
//	level = "info"
//	file = ""
//
// A missing file is not an error; defaults are used. Watch reloads the file
// whenever it changes on disk.
package config
