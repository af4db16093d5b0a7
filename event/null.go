package event

// NullSink implements Sink by discarding all events.
//
// This is the Null Object pattern applied to observability: callers hold a
// Sink that does nothing instead of a nil they would have to check before
// every emit. It is safe for concurrent use and has zero overhead.
//
// Use cases:
//   - Running a demo without any output
//   - Tests that do not care about emitted events
//   - Disabling emission without changing call sites
//
// Example usage:
//
//	player := adapter.NewAudioPlayer(event.NewNullSink())
type NullSink struct{}

// NewNullSink creates a Sink that discards every event it receives.
func NewNullSink() *NullSink {
	return &NullSink{}
}

// Emit discards the event without any processing.
func (n *NullSink) Emit(event Event) {
	// No-op: discard the event
}
