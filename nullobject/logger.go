// Package nullobject demonstrates the Null Object pattern with a logger.
//
// Components in this module accept a Logger and call it unconditionally.
// Instead of guarding every call with a nil check, callers that want no
// logging receive a NopLogger, a do-nothing implementation of the same
// interface. The absence of a collaborator is modeled as a collaborator
// that does nothing.
package nullobject

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F constructs a Field. Shorthand for composing log calls:
//
//	log.Info("vehicle built", nullobject.F("kind", "car"))
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the logging interface used throughout the pattern demos.
//
// Implementations should be safe for concurrent use. Two are provided:
//   - NopLogger: discards everything (the null object)
//   - ZapLogger: forwards to a go.uber.org/zap logger
type Logger interface {
	// Debug logs fine-grained diagnostic detail.
	Debug(msg string, fields ...Field)

	// Info logs normal operational messages.
	Info(msg string, fields ...Field)

	// Error logs failures that need attention.
	Error(msg string, fields ...Field)
}
