package logsource

import (
	"bytes"
	"strings"
)

// Splitter cuts a byte stream into lines, carrying partial lines across
// writes.
type Splitter struct {
	partial []byte
}

// Write consumes p and returns every line it completed.
func (s *Splitter) Write(p []byte) []string {
	var lines []string
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			s.partial = append(s.partial, p...)
			break
		}
		s.partial = append(s.partial, p[:i]...)
		lines = append(lines, strings.TrimSuffix(string(s.partial), "\r"))
		s.partial = s.partial[:0]
		p = p[i+1:]
	}
	return lines
}

// Reset drops any buffered partial line.
func (s *Splitter) Reset() {
	s.partial = s.partial[:0]
}
