package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where turtlelog reads its streams from.
type Config struct {
	DaemonLog           string
	DaemonUnit          string
	BackendLog          string
	UseLocalDaemon      bool
	DaemonFailureMarker string
	MaxLines            int
	LogFile             string
	LogLevel            string
}

const (
	defaultConfigPath = "~/.config/turtlelog/config.toml"
	defaultDataDir    = "~/.local/share/turtlelog"
	defaultLogFile    = "~/.local/state/turtlelog/turtlelog.log"
	defaultMaxLines   = 1000
	defaultLogLevel   = "info"

	// DefaultDaemonFailureMarker is the wallet-backend line written when the
	// remote daemon could not be reached and the local node took over.
	DefaultDaemonFailureMarker = "Failed to connect to daemon"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		DaemonLog:           filepath.Join(dataDir, "TurtleCoind.log"),
		BackendLog:          filepath.Join(dataDir, "wallet-backend.log"),
		UseLocalDaemon:      true,
		DaemonFailureMarker: DefaultDaemonFailureMarker,
		MaxLines:            defaultMaxLines,
		LogFile:             mustExpand(defaultLogFile),
		LogLevel:            defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DaemonLog           string `toml:"daemon_log"`
		DaemonUnit          string `toml:"daemon_unit"`
		BackendLog          string `toml:"backend_log"`
		UseLocalDaemon      *bool  `toml:"use_local_daemon"`
		DaemonFailureMarker string `toml:"daemon_failure_marker"`
		MaxLines            int    `toml:"max_lines"`
		LogFile             string `toml:"log_file"`
		LogLevel            string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DaemonLog); v != "" {
		cfg.DaemonLog = mustExpand(v)
	}
	cfg.DaemonUnit = strings.TrimSpace(raw.DaemonUnit)
	if v := strings.TrimSpace(raw.BackendLog); v != "" {
		cfg.BackendLog = mustExpand(v)
	}
	if raw.UseLocalDaemon != nil {
		cfg.UseLocalDaemon = *raw.UseLocalDaemon
	}
	if v := strings.TrimSpace(raw.DaemonFailureMarker); v != "" {
		cfg.DaemonFailureMarker = v
	}
	if raw.MaxLines > 0 {
		cfg.MaxLines = raw.MaxLines
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Overrides are command-line or environment values that win over the file.
// Zero values leave the file value in place.
type Overrides struct {
	DaemonLog  string
	DaemonUnit string
	BackendLog string
	MaxLines   int
	LogFile    string
	LogLevel   string
}

// Apply copies every set override onto c.
func (o Overrides) Apply(c *Config) {
	if v := strings.TrimSpace(o.DaemonLog); v != "" {
		c.DaemonLog = mustExpand(v)
	}
	if v := strings.TrimSpace(o.DaemonUnit); v != "" {
		c.DaemonUnit = v
	}
	if v := strings.TrimSpace(o.BackendLog); v != "" {
		c.BackendLog = mustExpand(v)
	}
	if o.MaxLines > 0 {
		c.MaxLines = o.MaxLines
	}
	if v := strings.TrimSpace(o.LogFile); v != "" {
		c.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(o.LogLevel)); v != "" {
		c.LogLevel = v
	}
}

// DaemonOrigin describes where daemon lines come from, for display.
func (c Config) DaemonOrigin() string {
	if c.DaemonUnit != "" {
		return "journal:" + c.DaemonUnit
	}
	return c.DaemonLog
}

// ExpandPath resolves a leading ~ and makes path absolute. Invalid input is
// returned unchanged.
func ExpandPath(path string) string {
	return mustExpand(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
