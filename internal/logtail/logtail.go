package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. Missing files yield no lines.
func Read(path string, maxLines int) ([]string, error) {
	lines, _, err := ReadTail(path, maxLines)
	return lines, err
}

// ReadAll is Read for one-shot readers with no follower: a trailing line
// without a newline is returned as the last line.
func ReadAll(path string, maxLines int) ([]string, error) {
	lines, _, err := readTail(path, maxLines, true)
	return lines, err
}

// ReadTail is Read plus the byte offset just past the last complete line, so
// a follower can resume from there without re-reading or dropping output.
func ReadTail(path string, maxLines int) ([]string, int64, error) {
	return readTail(path, maxLines, false)
}

func readTail(path string, maxLines int, includePartial bool) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var all []string
	var ring []string
	if maxLines > 0 {
		ring = make([]string, maxLines)
	}

	reader := bufio.NewReaderSize(file, 64*1024)
	var offset int64
	count := 0
	idx := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("read log: %w", err)
		}
		if !strings.HasSuffix(raw, "\n") && (!includePartial || raw == "") {
			// partial trailing line; the follower picks it up once complete
			break
		}
		offset += int64(len(raw))
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		if maxLines <= 0 {
			all = append(all, line)
		} else {
			ring[idx] = line
			idx = (idx + 1) % maxLines
			if count < maxLines {
				count++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if maxLines <= 0 {
		return all, offset, nil
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, offset, nil
}
