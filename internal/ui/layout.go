package ui

import "time"

// Layout constants.
const (
	// menuWidth is the width of the log menu column, borders included.
	menuWidth = 20

	// LayoutCompactWidth is the threshold below which the menu is hidden.
	LayoutCompactWidth = 60

	// chromeHeight is header + command bar + status bar.
	chromeHeight = 3
)

// Timing constants.
const (
	// MenuRevealDelay is how long after start the log menu slides in.
	MenuRevealDelay = 200 * time.Millisecond

	// DefaultUIInterval is how often source health is re-read.
	DefaultUIInterval = time.Second
)
