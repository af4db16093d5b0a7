// Package event provides event emission for the pattern demonstrations.
//
// Every package in this module reports what it is doing through a Sink
// rather than printing directly. That keeps the toy domains testable and
// gives each demo a pluggable observability backend:
//   - Logging: stdout, files (WriterSink)
//   - Distributed tracing: OpenTelemetry (OTelSink)
//   - In-memory capture for tests and dashboards (BufferedSink)
//   - Nothing at all (NullSink)
package event

// Event represents a single observable action taken during a demo run.
//
// Events are deliberately small. A demo is a short, sequential run (playing
// a track, building a vehicle, preparing a beverage), so an event carries
// just enough to reconstruct what happened and in what order.
type Event struct {
	// Demo identifies the run that emitted this event, for example
	// "mediaplayer" or "beverage". Sinks that capture history key on it.
	Demo string

	// Step is the sequential step number within the demo (1-indexed).
	// Zero for run-level events (start, complete, error).
	Step int

	// Op names the operation that emitted the event, such as "play",
	// "build" or "brew". Empty string for run-level events.
	Op string

	// Msg is a human-readable description of what happened.
	Msg string

	// Meta contains additional structured data specific to this event.
	// Common keys:
	//   - "error": error text when the operation failed
	//   - "media_type": requested media format (adapter demos)
	//   - "kind": vehicle tag (factory demos)
	//   - "method": payment method name (strategy demos)
	Meta map[string]interface{}
}
