package event

// Sink receives events emitted by the pattern demonstrations.
//
// Implementations should be:
//   - Non-blocking: avoid slowing down the demo run
//   - Thread-safe: demos may emit from multiple goroutines
//   - Resilient: a failing backend must not crash the demo
//
// Emit should not panic. Errors should be handled internally.
type Sink interface {
	// Emit delivers an event to the configured backend.
	Emit(event Event)
}
