// Package app is the composition root of turtlelog.
//
// Run loads the TOML config, applies command-line overrides and opens the
// file logger. It creates one logsource.Buffer per stream and starts a
// supervised tailer for each: a FileTailer for the wallet backend, and for
// the daemon either a JournalTailer (when a systemd unit is configured) or a
// FileTailer. Tailers that stop are restarted with exponential backoff capped
// at 30 seconds, and every stop is recorded in the shared state.Store so the
// header can flag a failing source.
//
// The UI receives the saved session (selected log and theme) and returns the
// final one, which Run writes back to the preferences file.
//
//	Run()
//	 ├─> config.Load() + Overrides.Apply()
//	 ├─> OpenLogFile() / NewLogger()
//	 ├─> prefs.Load()
//	 ├─> StartSupervisor() per stream ──> tailer.Run() ──> Buffer.Append()
//	 ├─> ui.Run()  (blocks)                                   │
//	 │      └─> waitForChange() <── Subscription.C() <────────┘
//	 └─> prefs.Save()
//
// Print renders a log file once to an io.Writer and backs the print command.
package app
