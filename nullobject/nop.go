package nullobject

// NopLogger implements Logger by discarding every message.
//
// This is the null object: it satisfies the Logger contract, never errors,
// performs no I/O, and is safe for concurrent use. Constructors in this
// module substitute a NopLogger when handed a nil Logger so that no caller
// ever branches on logger presence.
//
// Example usage:
//
//	trail := nullobject.NewAuditTrail(nil) // logging silently disabled
type NopLogger struct{}

// NewNopLogger creates a Logger that does nothing.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (NopLogger) Debug(msg string, fields ...Field) {}

// Info discards the message.
func (NopLogger) Info(msg string, fields ...Field) {}

// Error discards the message.
func (NopLogger) Error(msg string, fields ...Field) {}

// OrNop returns log unchanged when non-nil, and a NopLogger otherwise.
//
// Constructors use this to normalize their logger argument once, at the
// boundary, instead of nil-checking at every call site.
func OrNop(log Logger) Logger {
	if log == nil {
		return NopLogger{}
	}
	return log
}
