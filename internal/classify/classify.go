package classify

import (
	"errors"
	"fmt"
	"strings"
)

// StreamKind identifies which log a line came from.
type StreamKind string

const (
	StreamDaemon  StreamKind = "daemon"
	StreamBackend StreamKind = "wallet-backend"
)

// ErrUnknownStream is returned by ParseStream for unrecognized keys.
var ErrUnknownStream = errors.New("unknown log stream")

// Streams lists the known streams in menu order.
func Streams() []StreamKind {
	return []StreamKind{StreamBackend, StreamDaemon}
}

// ParseStream converts a stream key into a StreamKind.
func ParseStream(key string) (StreamKind, error) {
	switch StreamKind(strings.TrimSpace(key)) {
	case StreamDaemon:
		return StreamDaemon, nil
	case StreamBackend:
		return StreamBackend, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStream, key)
	}
}

// Label returns the menu label for the stream.
func (s StreamKind) Label() string {
	switch s {
	case StreamDaemon:
		return "TurtleCoind"
	case StreamBackend:
		return "WalletBackend"
	default:
		return string(s)
	}
}

// Line is a classified log line, rebuilt on every render.
type Line struct {
	Text string
	Category
}

// Links returns the URLs the line renders as clickable.
func (l Line) Links() []string {
	switch l.Kind {
	case Link, CompoundLink:
		return []string{l.URL}
	default:
		return nil
	}
}

// Classify maps a raw line from stream to its rendering instruction.
func Classify(raw string, stream StreamKind) Line {
	if stream != StreamDaemon {
		return Line{Text: raw, Category: Category{Kind: Plain}}
	}
	if strings.TrimSpace(raw) == "" {
		return Line{Text: raw, Category: Category{Kind: Suppressed}}
	}
	scrubbed := Scrub(raw)
	return Line{Text: scrubbed, Category: Resolve(raw, scrubbed)}
}

// ClassifyAll classifies a snapshot of lines in order.
func ClassifyAll(lines []string, stream StreamKind) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	for i, raw := range lines {
		out[i] = Classify(raw, stream)
	}
	return out
}

// Visible drops suppressed lines.
func Visible(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.Kind != Suppressed {
			out = append(out, line)
		}
	}
	return out
}
