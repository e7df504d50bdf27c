package classify

import "strings"

// scrubMarkers are removed from daemon lines before display.
var scrubMarkers = []string{
	"[protocol]",
	"[Core]",
	"[daemon]",
	"[node_server]",
	"[RocksDBWrapper]",
	ChatURL,
}

// Scrub removes every known tag marker and the chat URL from line. Removal
// repeats until the line is stable, so scrubbing a scrubbed line is a no-op.
func Scrub(line string) string {
	for {
		next := line
		for _, marker := range scrubMarkers {
			next = strings.ReplaceAll(next, marker, "")
		}
		if next == line {
			return next
		}
		line = next
	}
}
