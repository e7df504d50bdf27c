package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/turtlelog/internal/classify"
	"github.com/five82/turtlelog/internal/state"
)

const (
	defaultRestartDelay = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

var errTailerStopped = errors.New("tailer stopped")

// tailer follows one log source until ctx is cancelled.
type tailer interface {
	Run(ctx context.Context) error
}

// StartSupervisor runs t in a background goroutine and restarts it with
// exponential backoff whenever it returns before ctx is cancelled. Every exit
// is recorded in store. It returns immediately.
func StartSupervisor(ctx context.Context, store *state.Store, stream classify.StreamKind, t tailer, logger *slog.Logger, base time.Duration) {
	if base <= 0 {
		base = defaultRestartDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("stream", string(stream))

	go func() {
		store.Update(stream, nil)
		failures := 0

		for {
			started := time.Now()
			err := t.Run(ctx)
			if ctx.Err() != nil {
				return
			}
			if err == nil {
				err = errTailerStopped
			}

			// A long healthy run starts the backoff over.
			if time.Since(started) >= maxBackoff {
				failures = 0
				store.Update(stream, nil)
			}
			store.Update(stream, fmt.Errorf("%s: %w", stream.Label(), err))

			delay := calculateBackoff(failures, base)
			failures++
			logger.Warn("log source stopped, restarting", "error", err, "failures", failures, "retry_in", delay)

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}()
}

// calculateBackoff returns base doubled once per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return min(base, maxBackoff)
	}
	d := base
	for range failures {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
