package placenorm

import (
	"fmt"
	"log/slog"
	"maps"
	"sync"
)

// Diagnostics receives letters that the substitution table does not cover.
// Implementations must be safe for concurrent use and must not panic.
type Diagnostics interface {
	UntokenizedLetter(letter rune, text string)
}

// DiagnosticsFunc adapts a function to Diagnostics.
type DiagnosticsFunc func(letter rune, text string)

// UntokenizedLetter calls f.
func (f DiagnosticsFunc) UntokenizedLetter(letter rune, text string) {
	f(letter, text)
}

type logDiagnostics struct {
	logger *slog.Logger
}

func (d logDiagnostics) UntokenizedLetter(letter rune, text string) {
	d.logger.Warn(fmt.Sprintf("Untokenized letter: %c (%d) in %s", letter, letter, text),
		slog.String("letter", string(letter)),
		slog.Int("codepoint", int(letter)),
		slog.String("text", text),
	)
}

// Event is one untokenized letter recorded by a Collector.
type Event struct {
	Letter rune
	Text   string
}

// Collector is a Diagnostics that keeps events in memory.
// The zero value is ready to use.
type Collector struct {
	mu     sync.Mutex
	events []Event
	counts map[rune]int
}

// UntokenizedLetter records the event.
func (c *Collector) UntokenizedLetter(letter rune, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.counts == nil {
		c.counts = make(map[rune]int)
	}
	c.events = append(c.events, Event{Letter: letter, Text: text})
	c.counts[letter]++
}

// Events returns a copy of the recorded events in arrival order.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

// Counts returns how often each letter was reported.
func (c *Collector) Counts() map[rune]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.counts)
}

// Reset discards everything recorded so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
	c.counts = nil
}
