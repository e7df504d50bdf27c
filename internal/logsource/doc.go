// Package logsource provides the live log streams the viewer renders.
//
// # Overview
//
// A Buffer is an append-only, size-bounded sequence of raw lines that
// notifies subscribers whenever it grows. Tailers feed buffers:
//
//   - FileTailer backfills the last lines of a file with logtail.ReadTail
//     and then follows appends using fsnotify, with a slow poll as a safety
//     net for filesystems that do not deliver events.
//   - JournalTailer streams `journalctl -f -u <unit> -o cat` for daemons run
//     under systemd.
//
// # Subscriptions
//
// Subscribe returns a handle whose channel receives a coalesced signal after
// one or more appends. Readers take a fresh Lines() snapshot on each signal;
// the buffer never hands out its internal slice. Close releases the handle
// and closes its channel, and may be called any number of times.
//
// # Unavailable sources
//
// A missing file or directory is an empty stream, not an error. Tailers
// return errors only for real I/O or watcher failures, which the app layer
// records and retries with backoff.
package logsource
