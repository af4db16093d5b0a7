package nullobject

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestNopLogger_NoOp verifies NopLogger accepts every call without effect.
func TestNopLogger_NoOp(t *testing.T) {
	log := NewNopLogger()

	// None of these may panic, with or without fields.
	log.Debug("debug")
	log.Info("info", F("k", "v"))
	log.Error("error", F("a", 1), F("b", true))
}

// TestNopLogger_InterfaceContract verifies both implementations satisfy Logger.
func TestNopLogger_InterfaceContract(t *testing.T) {
	var _ Logger = NewNopLogger()
	var _ Logger = NewZapLogger(nil)
}

func TestOrNop(t *testing.T) {
	t.Run("nil becomes NopLogger", func(t *testing.T) {
		log := OrNop(nil)
		if log == nil {
			t.Fatal("OrNop(nil) returned nil")
		}
		log.Info("must not panic")
	})

	t.Run("non-nil passes through", func(t *testing.T) {
		z := NewZapLogger(zap.NewNop())
		if got := OrNop(z); got != Logger(z) {
			t.Errorf("OrNop returned %v, want original logger", got)
		}
	})
}

func TestZapLogger_ForwardsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewZapLogger(zap.New(core))

	log.Info("vehicle built", F("kind", "car"))
	log.Error("build failed", F("kind", "plane"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	if entries[0].Message != "vehicle built" {
		t.Errorf("message = %q, want %q", entries[0].Message, "vehicle built")
	}
	fields := entries[0].ContextMap()
	if fields["kind"] != "car" {
		t.Errorf("field kind = %v, want %q", fields["kind"], "car")
	}

	if entries[1].Level != zap.ErrorLevel {
		t.Errorf("level = %v, want %v", entries[1].Level, zap.ErrorLevel)
	}
}

// TestAuditTrail_NilLogger is the point of the pattern: a consumer built
// with nil works identically, minus the narration.
func TestAuditTrail_NilLogger(t *testing.T) {
	trail := NewAuditTrail(nil)

	trail.Record("played mp3")
	trail.Record("built car")

	entries := trail.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0] != "played mp3" || entries[1] != "built car" {
		t.Errorf("entries = %v, want recorded order preserved", entries)
	}
}

func TestAuditTrail_LogsThroughZap(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	trail := NewAuditTrail(NewZapLogger(zap.New(core)))

	trail.Record("checked out")

	if logs.Len() != 1 {
		t.Fatalf("log count = %d, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["action"] != "checked out" {
		t.Errorf("action field = %v, want %q", entry.ContextMap()["action"], "checked out")
	}
}

func TestAuditTrail_Concurrent(t *testing.T) {
	trail := NewAuditTrail(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				trail.Record("action")
			}
		}()
	}
	wg.Wait()

	if got := len(trail.Entries()); got != 400 {
		t.Errorf("len(entries) = %d, want 400", got)
	}
}
