// Package analytics records fire-and-forget usage events.
package analytics

import (
	"context"
	"sync"
)

// Event is one usage event.
type Event struct {
	Category string
	Action   string
	// Label carries the invocation source.
	Label string
}

// Sink receives usage events. Track must not block the caller.
type Sink interface {
	Track(ctx context.Context, ev Event)
}

// Nop discards every event.
type Nop struct{}

// Track implements Sink.
func (Nop) Track(context.Context, Event) {}

// Recorder keeps events in memory. Useful in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Track implements Sink.
func (r *Recorder) Track(_ context.Context, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
