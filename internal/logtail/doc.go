// Package logtail reads the tail of a log file.
//
// # Overview
//
// Read extracts the last N lines from a file without holding the whole file
// in memory. ReadTail additionally reports the byte offset just past the last
// complete line, which is where a follower (see package logsource) resumes.
//
// # Ring Buffer Algorithm
//
//	1. Allocate ring buffer of size maxLines
//	2. For each complete line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. If total < maxLines:
//	   - Return first 'count' entries from buffer
//	4. If total >= maxLines:
//	   - Return buffer starting from current index (oldest line)
//
// A trailing line without a newline is left unread and not counted in the
// offset; the daemon may still be writing it. ReadAll is for one-shot readers
// and returns that line too.
//
// # Error Handling
//
// Missing files return nil lines and a zero offset (an unavailable source is
// an empty stream). Other I/O errors are returned wrapped.
package logtail
