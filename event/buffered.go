package event

import "sync"

// BufferedSink implements Sink by storing events in memory.
//
// The sink captures every event and provides query capabilities over the
// run history. Events are organized by demo name for efficient retrieval.
//
// Features:
//   - Thread-safe concurrent access
//   - Query by demo with optional filtering
//   - Filter by op, message, step range
//   - Clear events by demo or all at once
//
// Warning: all events are held in memory. That is fine for the short runs
// this module produces; long-lived processes should prefer WriterSink or
// OTelSink.
//
// Example usage:
//
//	sink := event.NewBufferedSink()
//	preparer := templatemethod.NewPreparer(templatemethod.WithSink(sink))
//	_ = preparer.Prepare(ctx, templatemethod.Tea{})
//
//	steps := sink.History("beverage")
type BufferedSink struct {
	mu     sync.RWMutex
	events map[string][]Event // demo -> events
}

// HistoryFilter specifies criteria for filtering captured history.
//
// All fields are optional. When multiple fields are set they combine with
// AND logic (every condition must match).
type HistoryFilter struct {
	Op      string // Filter by operation (empty = no filter)
	Msg     string // Filter by message (empty = no filter)
	MinStep *int   // Minimum step number (nil = no filter)
	MaxStep *int   // Maximum step number (nil = no filter)
}

// NewBufferedSink creates a BufferedSink. Safe for concurrent use.
func NewBufferedSink() *BufferedSink {
	return &BufferedSink{
		events: make(map[string][]Event),
	}
}

// Emit stores an event in the buffer, keyed by its demo name.
func (b *BufferedSink) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events[event.Demo] = append(b.events[event.Demo], event)
}

// History retrieves all events for a demo in emission order.
//
// Returns an empty slice if no events exist for the demo. The returned
// slice is a copy and may be modified freely.
func (b *BufferedSink) History(demo string) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[demo]
	if events == nil {
		return []Event{}
	}

	result := make([]Event, len(events))
	copy(result, events)
	return result
}

// HistoryWithFilter retrieves filtered events for a demo.
//
// Applies the filter criteria to select matching events; all conditions
// must match. Events are returned in emission order. Returns an empty
// slice when nothing matches.
func (b *BufferedSink) HistoryWithFilter(demo string, filter HistoryFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[demo]
	if events == nil {
		return []Event{}
	}

	var result []Event
	for _, event := range events {
		if !matchesFilter(event, filter) {
			continue
		}
		result = append(result, event)
	}

	if result == nil {
		return []Event{}
	}
	return result
}

func matchesFilter(event Event, filter HistoryFilter) bool {
	if filter.Op != "" && event.Op != filter.Op {
		return false
	}
	if filter.Msg != "" && event.Msg != filter.Msg {
		return false
	}
	if filter.MinStep != nil && event.Step < *filter.MinStep {
		return false
	}
	if filter.MaxStep != nil && event.Step > *filter.MaxStep {
		return false
	}
	return true
}

// Clear removes stored events.
//
// If demo is non-empty, clears only that demo's events. If demo is empty,
// clears everything.
func (b *BufferedSink) Clear(demo string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if demo == "" {
		b.events = make(map[string][]Event)
	} else {
		delete(b.events, demo)
	}
}
