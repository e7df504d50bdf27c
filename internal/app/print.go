package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/five82/turtlelog/internal/classify"
	"github.com/five82/turtlelog/internal/logtail"
	"github.com/five82/turtlelog/internal/ui"
)

// PrintOptions configure a one-shot render of a log file.
type PrintOptions struct {
	Path     string
	Stream   classify.StreamKind
	MaxLines int // zero or less prints the whole file
	Dark     bool
	Logger   *slog.Logger
}

// Print classifies the tail of a log file and writes the visible lines to w
// with the UI's styling. Unlike the live view, a missing file is an error.
func Print(w io.Writer, opts PrintOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(opts.Path)
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", opts.Path)
	}

	raw, err := logtail.ReadAll(opts.Path, opts.MaxLines)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.Path, err)
	}

	theme := ui.ThemeFor(opts.Dark)
	visible := classify.Visible(classify.ClassifyAll(raw, opts.Stream))
	for _, line := range visible {
		if _, err := fmt.Fprintln(w, ui.RenderLine(theme, line, false)); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}

	if len(visible) == 0 {
		logger.Warn("no visible lines", "path", opts.Path, "stream", string(opts.Stream), "read", len(raw))
	} else {
		logger.Debug("printed log", "path", opts.Path, "stream", string(opts.Stream), "read", len(raw), "visible", len(visible))
	}
	return nil
}
