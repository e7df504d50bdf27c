package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/turtlelog/internal/classify"
	"github.com/five82/turtlelog/internal/config"
	"github.com/five82/turtlelog/internal/logsource"
	"github.com/five82/turtlelog/internal/opener"
	"github.com/five82/turtlelog/internal/prefs"
	"github.com/five82/turtlelog/internal/state"
	"github.com/five82/turtlelog/internal/ui"
)

// Options configure the turtlelog application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/turtlelog/prefs.toml
	Overrides  config.Overrides
	Light      bool // start in the light theme regardless of prefs
}

// source is one supervised stream.
type source struct {
	origin string
	tailer tailer
}

// Run boots the turtlelog TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts.Overrides.Apply(&cfg)

	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logFile, err := OpenLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := NewLogger(logFile, level)
	logger.Info("turtlelog starting",
		"daemon", cfg.DaemonOrigin(),
		"backend", cfg.BackendLog,
		"use_local_daemon", cfg.UseLocalDaemon,
		"max_lines", cfg.MaxLines)

	userPrefs := prefs.Load(opts.PrefsPath)
	if opts.Light {
		userPrefs.DarkMode = false
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	buffers := newBuffers(cfg.MaxLines)
	for stream, src := range buildSources(cfg, buffers, logger) {
		store.Register(stream, src.origin)
		StartSupervisor(ctx, store, stream, src.tailer, logger, defaultRestartDelay)
	}

	session, runErr := ui.Run(ui.Options{
		Context:             ctx,
		Sources:             buffers,
		Store:               store,
		Opener:              opener.New(logger),
		Session:             ui.Session{SelectedLog: userPrefs.SelectedLog, DarkMode: userPrefs.DarkMode},
		UseLocalDaemon:      cfg.UseLocalDaemon,
		DaemonFailureMarker: cfg.DaemonFailureMarker,
		PollTick:            time.Second,
	})

	if err := prefs.Save(opts.PrefsPath, prefs.Prefs{DarkMode: session.DarkMode, SelectedLog: session.SelectedLog}); err != nil {
		logger.Warn("save preferences failed", "error", err)
	}
	if runErr != nil {
		return fmt.Errorf("run ui: %w", runErr)
	}
	logger.Info("turtlelog stopped")
	return nil
}

// newBuffers creates one buffer per stream.
func newBuffers(limit int) map[classify.StreamKind]*logsource.Buffer {
	buffers := make(map[classify.StreamKind]*logsource.Buffer, len(classify.Streams()))
	for _, stream := range classify.Streams() {
		buffers[stream] = logsource.NewBuffer(limit)
	}
	return buffers
}

// buildSources picks a tailer per stream. The daemon follows its journald unit
// when one is configured and its log file otherwise.
func buildSources(cfg config.Config, buffers map[classify.StreamKind]*logsource.Buffer, logger *slog.Logger) map[classify.StreamKind]source {
	sources := map[classify.StreamKind]source{
		classify.StreamBackend: {
			origin: cfg.BackendLog,
			tailer: &logsource.FileTailer{
				Path:   cfg.BackendLog,
				Buffer: buffers[classify.StreamBackend],
				Logger: logger.With("stream", string(classify.StreamBackend)),
			},
		},
	}

	daemonLogger := logger.With("stream", string(classify.StreamDaemon))
	if cfg.DaemonUnit != "" {
		sources[classify.StreamDaemon] = source{
			origin: cfg.DaemonOrigin(),
			tailer: &logsource.JournalTailer{
				Unit:   cfg.DaemonUnit,
				Buffer: buffers[classify.StreamDaemon],
				Logger: daemonLogger,
			},
		}
	} else {
		sources[classify.StreamDaemon] = source{
			origin: cfg.DaemonOrigin(),
			tailer: &logsource.FileTailer{
				Path:   cfg.DaemonLog,
				Buffer: buffers[classify.StreamDaemon],
				Logger: daemonLogger,
			},
		}
	}
	return sources
}
