package nullobject

import "sync"

// AuditTrail records actions taken during a demo run.
//
// It is the consumer half of the Null Object demonstration: Record calls
// its logger unconditionally. There is no `if a.log != nil` anywhere in
// this type, and there never needs to be, because the constructor
// normalizes nil to NopLogger.
//
// Thread-safe for concurrent use.
type AuditTrail struct {
	log Logger

	mu      sync.Mutex
	entries []string
}

// NewAuditTrail creates an AuditTrail.
//
// Pass nil to disable logging; the trail still records entries, it just
// stops narrating them.
func NewAuditTrail(log Logger) *AuditTrail {
	return &AuditTrail{
		log: OrNop(log),
	}
}

// Record appends an action to the trail and logs it.
func (a *AuditTrail) Record(action string) {
	a.mu.Lock()
	a.entries = append(a.entries, action)
	count := len(a.entries)
	a.mu.Unlock()

	a.log.Info("action recorded", F("action", action), F("total", count))
}

// Entries returns a copy of all recorded actions in order.
func (a *AuditTrail) Entries() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]string, len(a.entries))
	copy(out, a.entries)
	return out
}
