package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	dataDir, err := expandPath(defaultDataDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "TurtleCoind.log"), cfg.DaemonLog)
	assert.Equal(t, filepath.Join(dataDir, "wallet-backend.log"), cfg.BackendLog)
	assert.True(t, cfg.UseLocalDaemon)
	assert.Equal(t, defaultMaxLines, cfg.MaxLines)
	assert.Equal(t, DefaultDaemonFailureMarker, cfg.DaemonFailureMarker)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.DaemonUnit)
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
daemon_log = "  ~/node/TurtleCoind.log  "
daemon_unit = " turtlecoind.service "
backend_log = "/var/log/wallet-backend.log"
use_local_daemon = false
daemon_failure_marker = "daemon unreachable"
max_lines = 250
log_level = " DEBUG "
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cfg.DaemonLog, home), "DaemonLog %q should be under %q", cfg.DaemonLog, home)
	assert.Equal(t, "turtlecoind.service", cfg.DaemonUnit)
	assert.Equal(t, filepath.Clean("/var/log/wallet-backend.log"), cfg.BackendLog)
	assert.False(t, cfg.UseLocalDaemon)
	assert.Equal(t, "daemon unreachable", cfg.DaemonFailureMarker)
	assert.Equal(t, 250, cfg.MaxLines)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "journal:turtlecoind.service", cfg.DaemonOrigin())
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
daemon_log = "   "
backend_log = ""
max_lines = -3
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.DaemonLog, cfg.DaemonLog)
	assert.Equal(t, def.BackendLog, cfg.BackendLog)
	assert.Equal(t, defaultMaxLines, cfg.MaxLines)
	assert.True(t, cfg.UseLocalDaemon)
	assert.Equal(t, cfg.DaemonLog, cfg.DaemonOrigin())
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`daemon_log = [`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)
	assert.Equal(t, got, ExpandPath("~/a/b"))
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := expandPath("   ")
	assert.Error(t, err)
	assert.Equal(t, "   ", ExpandPath("   "))
}

func TestOverridesApply(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	Overrides{
		DaemonLog:  "~/node/TurtleCoind.log",
		DaemonUnit: " turtlecoind.service ",
		MaxLines:   250,
		LogLevel:   "DEBUG",
	}.Apply(&cfg)

	assert.Equal(t, filepath.Join(home, "node", "TurtleCoind.log"), cfg.DaemonLog)
	assert.Equal(t, "turtlecoind.service", cfg.DaemonUnit)
	assert.Equal(t, 250, cfg.MaxLines)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Default().BackendLog, cfg.BackendLog, "unset overrides keep the file value")
	assert.Equal(t, "journal:turtlecoind.service", cfg.DaemonOrigin())
}

func TestOverridesApply_ZeroValueIsNoop(t *testing.T) {
	cfg := Default()
	want := cfg
	Overrides{MaxLines: -5}.Apply(&cfg)
	assert.Equal(t, want, cfg)
}
