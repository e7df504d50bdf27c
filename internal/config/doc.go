// Package config loads turtlelog's configuration file.
//
// # File Format
//
// The file is TOML, by default at ~/.config/turtlelog/config.toml:
//
//	daemon_log            = "~/.local/share/turtlelog/TurtleCoind.log"
//	daemon_unit           = ""       # journald unit; replaces daemon_log when set
//	backend_log           = "~/.local/share/turtlelog/wallet-backend.log"
//	use_local_daemon      = true
//	daemon_failure_marker = "Failed to connect to daemon"
//	max_lines             = 1000
//	log_file              = "~/.local/state/turtlelog/turtlelog.log"
//	log_level             = "info"
//
// A missing file yields Default(). Blank strings and non-positive max_lines
// fall back to defaults; paths get ~ expansion and are made absolute.
//
// # Daemon tab visibility
//
// The daemon tab is shown when use_local_daemon is true, or when the wallet
// backend log contains daemon_failure_marker (the wallet fell back to its
// bundled node after a remote daemon failed to initialise).
//
// # Overrides
//
// Command-line flags and TURTLELOG_* environment variables are collected by
// cmd/turtlelog through viper into an Overrides value. Overrides.Apply copies
// the set fields onto the loaded Config and leaves the rest alone.
package config
