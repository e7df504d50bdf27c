// Package state tracks the health of the log sources.
//
// # Overview
//
// Tailers run in supervised goroutines (see package app) and report every
// run's outcome here. The UI reads snapshots to show which stream is failing
// and why, without touching the tailers themselves.
//
//	Producer (tailer supervisor):      Consumer (UI):
//	┌──────────────────────┐          ┌────────────────────┐
//	│ tailer.Run(ctx)      │          │                    │
//	│      ↓               │          │                    │
//	│ store.Update(s, err) │─────────→│ store.Snapshot()   │
//	│      ↓               │ (mutex)  │      ↓             │
//	│ backoff, repeat      │          │ render header      │
//	└──────────────────────┘          └────────────────────┘
//
// # Update Semantics
//
//	store.Update(stream, nil)  → LastError cleared, ConsecutiveFailures = 0
//	store.Update(stream, err)  → LastError = err,   ConsecutiveFailures++
//
// A source is considered failing after two consecutive failures, which hides
// one-off hiccups such as a log rotation racing a read.
//
// The log lines themselves live in logsource.Buffer; the store only carries
// metadata.
package state
