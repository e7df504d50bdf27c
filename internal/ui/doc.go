// Package ui is the Bubble Tea front end of turtlelog.
//
// The screen is a header with source health, a command bar, a log menu that
// slides in shortly after start, and a viewport over the selected stream.
// Daemon lines are classified on every change and rendered by kind: colored
// tags, underlined links and compound "prefix + link" lines. Ascii-art and
// blank daemon lines never reach the screen.
//
// # Data flow
//
//  1. Run subscribes to every logsource.Buffer and starts the program
//  2. waitForChange commands turn buffer notifications into messages and re-arm
//  3. Each message re-classifies the active stream and re-renders the viewport
//  4. A ticker copies source health out of state.Store for the header
//
// # Key Bindings
//
//   - w / d / Tab: WalletBackend log, TurtleCoind log, next log
//   - Space: Toggle follow
//   - j/k, g/G, ctrl+d/ctrl+u, pgup/pgdown: Scroll
//   - n/N: Focus next or previous link
//   - Enter or o: Open the focused link in the browser
//   - T: Dark/light theme
//   - ?: Help
//   - q or Ctrl+C: Quit
//
// The TurtleCoind entry only appears when the wallet runs a local daemon or
// when the backend log shows that connecting to the remote daemon failed.
package ui
