package logsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/turtlelog/internal/logtail"
)

// DefaultPollInterval is how often a FileTailer re-checks its file when no
// filesystem events arrive.
const DefaultPollInterval = 2 * time.Second

var errWatcherClosed = errors.New("file watcher closed")

// FileTailer follows a log file into a Buffer.
type FileTailer struct {
	Path         string
	Buffer       *Buffer
	Logger       *slog.Logger
	PollInterval time.Duration

	primed bool
	offset int64
	split  Splitter
}

// Run backfills the buffer on first use and then follows the file until ctx
// is cancelled. It may be called again after an error; following resumes
// from the last read offset.
func (t *FileTailer) Run(ctx context.Context) error {
	logger := t.logger()

	if !t.primed {
		lines, offset, err := logtail.ReadTail(t.Path, t.Buffer.Limit())
		if err != nil {
			return fmt.Errorf("backfill %s: %w", t.Path, err)
		}
		t.Buffer.Append(lines...)
		t.offset = offset
		t.primed = true
		logger.Debug("log backfilled", "path", t.Path, "lines", len(lines))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(t.Path)
	if err := watcher.Add(dir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("log directory missing, polling", "dir", dir)
	}

	interval := t.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	target := filepath.Clean(t.Path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-watcher.Events:
			if !ok {
				return errWatcherClosed
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if evt.Has(fsnotify.Remove) || evt.Has(fsnotify.Rename) {
				logger.Info("log rotated", "path", t.Path)
				t.offset = 0
				t.split.Reset()
				continue
			}
			if err := t.readNew(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return errWatcherClosed
			}
			return fmt.Errorf("watch %s: %w", t.Path, err)

		case <-ticker.C:
			if err := t.readNew(); err != nil {
				return err
			}
		}
	}
}

// readNew appends whatever was written since the last read.
func (t *FileTailer) readNew() error {
	file, err := os.Open(t.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() < t.offset {
		t.logger().Info("log truncated", "path", t.Path)
		t.offset = 0
		t.split.Reset()
	}
	if info.Size() == t.offset {
		return nil
	}

	if _, err := file.Seek(t.offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek log: %w", err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	t.offset += int64(len(data))
	t.Buffer.Append(t.split.Write(data)...)
	return nil
}

func (t *FileTailer) logger() *slog.Logger {
	if t.Logger == nil {
		return slog.Default()
	}
	return t.Logger
}
