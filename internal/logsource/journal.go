package logsource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
)

var errJournalClosed = errors.New("journalctl exited")

// JournalTailer streams a systemd unit's journal into a Buffer.
type JournalTailer struct {
	Unit    string
	Buffer  *Buffer
	Logger  *slog.Logger
	Command string // defaults to journalctl

	primed bool
}

// Run follows the unit's journal until ctx is cancelled. The first run
// backfills up to the buffer limit; later runs only follow new entries.
func (t *JournalTailer) Run(ctx context.Context) error {
	backfill := 0
	if !t.primed {
		backfill = t.Buffer.Limit()
	}

	name := t.Command
	if name == "" {
		name = "journalctl"
	}
	// runCtx also stops journalctl when reading fails while it is still alive.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, "-f", "-u", t.Unit, "-o", "cat", "-n", strconv.Itoa(backfill))
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("journalctl pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("journalctl start: %w", err)
	}
	t.primed = true

	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("tailing journal", "unit", t.Unit)

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		t.Buffer.Append(scanner.Text())
	}
	scanErr := scanner.Err()
	if scanErr != nil {
		cancel()
	}
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return nil
	}
	if scanErr != nil {
		logger.Warn("journal read failed", "unit", t.Unit, "error", scanErr)
		return fmt.Errorf("read journal: %w", scanErr)
	}
	if waitErr != nil {
		return fmt.Errorf("%w: %w", errJournalClosed, waitErr)
	}
	return errJournalClosed
}
