package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/turtlelog/internal/classify"
)

// SourceStatus is the health of one log source.
type SourceStatus struct {
	Origin              string // file path or journald unit
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsFailing returns true when the source has failed repeatedly in a row.
func (s SourceStatus) IsFailing() bool {
	return s.ConsecutiveFailures >= 2
}

// Snapshot is a point-in-time view of every source.
type Snapshot struct {
	Sources map[classify.StreamKind]SourceStatus
}

// Source returns the status for stream, zero if unknown.
func (s Snapshot) Source(stream classify.StreamKind) SourceStatus {
	return s.Sources[stream]
}

// Store coordinates concurrent health updates from the tailers.
type Store struct {
	mu      sync.RWMutex
	sources map[classify.StreamKind]SourceStatus
}

// Register records where a stream's lines come from.
func (s *Store) Register(stream classify.StreamKind, origin string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sources == nil {
		s.sources = make(map[classify.StreamKind]SourceStatus)
	}
	status := s.sources[stream]
	status.Origin = origin
	s.sources[stream] = status
}

// Update records the outcome of a tailer run. When err is non-nil the failure
// count grows; a nil err clears it.
func (s *Store) Update(stream classify.StreamKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sources == nil {
		s.sources = make(map[classify.StreamKind]SourceStatus)
	}
	status := s.sources[stream]
	status.LastUpdated = time.Now()
	if err != nil {
		status.LastError = err
		status.ConsecutiveFailures++
	} else {
		status.LastError = nil
		status.ConsecutiveFailures = 0
	}
	s.sources[stream] = status
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Sources: make(map[classify.StreamKind]SourceStatus, len(s.sources))}
	for stream, status := range s.sources {
		if status.LastError != nil {
			status.LastError = fmt.Errorf("%w", status.LastError)
		}
		snap.Sources[stream] = status
	}
	return snap
}
