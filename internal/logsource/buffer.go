package logsource

import "sync"

// DefaultLimit bounds a Buffer created with a non-positive limit.
const DefaultLimit = 1000

// Buffer holds the most recent lines of one log stream.
type Buffer struct {
	mu    sync.RWMutex
	lines []string
	limit int
	subs  map[*Subscription]struct{}
}

// NewBuffer creates a buffer that keeps at most limit lines.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Buffer{
		limit: limit,
		subs:  make(map[*Subscription]struct{}),
	}
}

// Limit returns the maximum number of retained lines.
func (b *Buffer) Limit() int {
	return b.limit
}

// Append adds lines in order, trims the oldest beyond the limit and notifies
// subscribers. Appending nothing is a no-op.
func (b *Buffer) Append(lines ...string) {
	if len(lines) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, lines...)
	if overflow := len(b.lines) - b.limit; overflow > 0 {
		b.lines = append([]string(nil), b.lines[overflow:]...)
	}
	for sub := range b.subs {
		select {
		case sub.ch <- struct{}{}:
		default:
		}
	}
}

// Lines returns a copy of the current lines.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.lines) == 0 {
		return nil
	}
	dup := make([]string, len(b.lines))
	copy(dup, b.lines)
	return dup
}

// Len returns the number of retained lines.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Subscribe registers for change notifications. The caller must Close the
// returned subscription.
func (b *Buffer) Subscribe() *Subscription {
	sub := &Subscription{ch: make(chan struct{}, 1), buf: b}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

func (b *Buffer) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
}

// Subscription is a registered change listener on a Buffer.
type Subscription struct {
	ch   chan struct{}
	buf  *Buffer
	once sync.Once
}

// C receives a value after appends. It is closed by Close.
func (s *Subscription) C() <-chan struct{} {
	return s.ch
}

// Close releases the subscription.
func (s *Subscription) Close() {
	s.once.Do(func() { s.buf.unsubscribe(s) })
}
