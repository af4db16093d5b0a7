package factory

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/gopatterns/patterns/event"
)

// TestGarageContracts verifies every backend satisfies GarageStore.
func TestGarageContracts(t *testing.T) {
	var _ GarageStore = (*MemoryGarage)(nil)
	var _ GarageStore = (*SQLiteGarage)(nil)
	var _ GarageStore = (*MySQLGarage)(nil)
}

func TestOpenGarage_UnknownDriver(t *testing.T) {
	g, err := OpenGarage("postgres", "")
	if !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("error = %v, want ErrUnknownDriver", err)
	}
	if g != nil {
		t.Errorf("garage = %v, want nil", g)
	}
}

func TestOpenGarage_InvalidOption(t *testing.T) {
	_, err := OpenGarage("memory", "", WithMaxOpenConns(-1))
	if err == nil {
		t.Error("expected error for negative max open conns")
	}
}

// exerciseGarage runs the shared behavior suite against any backend.
func exerciseGarage(t *testing.T, g GarageStore) {
	t.Helper()
	ctx := context.Background()

	car, _ := New("car")
	truck, _ := New("truck")

	carRec, err := g.SaveVehicle(ctx, car)
	if err != nil {
		t.Fatalf("SaveVehicle(car) error = %v", err)
	}
	if carRec.ID == "" {
		t.Error("saved record has empty ID")
	}
	if carRec.Kind != "car" {
		t.Errorf("record kind = %q, want %q", carRec.Kind, "car")
	}
	if carRec.Description != "Driving a car" {
		t.Errorf("record description = %q, want %q", carRec.Description, "Driving a car")
	}

	truckRec, err := g.SaveVehicle(ctx, truck)
	if err != nil {
		t.Fatalf("SaveVehicle(truck) error = %v", err)
	}

	t.Run("load by id", func(t *testing.T) {
		got, err := g.Vehicle(ctx, carRec.ID)
		if err != nil {
			t.Fatalf("Vehicle(%q) error = %v", carRec.ID, err)
		}
		if got.ID != carRec.ID || got.Kind != carRec.Kind {
			t.Errorf("loaded %+v, want %+v", got, carRec)
		}
	})

	t.Run("missing id returns ErrNotFound", func(t *testing.T) {
		_, err := g.Vehicle(ctx, "no-such-id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("list preserves creation order", func(t *testing.T) {
		all, err := g.List(ctx)
		if err != nil {
			t.Fatalf("List error = %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("len(all) = %d, want 2", len(all))
		}
		if all[0].ID != carRec.ID || all[1].ID != truckRec.ID {
			t.Errorf("list order = [%s %s], want [%s %s]",
				all[0].ID, all[1].ID, carRec.ID, truckRec.ID)
		}
	})
}

func TestMemoryGarage(t *testing.T) {
	g, err := OpenGarage("memory", "")
	if err != nil {
		t.Fatalf("OpenGarage(memory) error = %v", err)
	}
	defer func() { _ = g.Close() }()

	exerciseGarage(t, g)
}

func TestSQLiteGarage(t *testing.T) {
	g, err := OpenGarage("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("OpenGarage(sqlite) error = %v", err)
	}
	defer func() { _ = g.Close() }()

	exerciseGarage(t, g)
}

func TestSQLiteGarage_CloseTwice(t *testing.T) {
	g, err := OpenGarage("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("OpenGarage(sqlite) error = %v", err)
	}
	if err := g.Close(); err != nil {
		t.Errorf("first Close error = %v", err)
	}
	if err := g.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
}

// TestMySQLGarage requires a running MySQL instance; set MYSQL_TEST_DSN to
// enable, e.g. "user:pass@tcp(localhost:3306)/garage_test?parseTime=true".
func TestMySQLGarage(t *testing.T) {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set, skipping MySQL integration test")
	}

	g, err := OpenGarage("mysql", dsn, WithMaxOpenConns(5))
	if err != nil {
		t.Fatalf("OpenGarage(mysql) error = %v", err)
	}
	defer func() { _ = g.Close() }()

	exerciseGarage(t, g)
}

func TestGarage_EmitsSaveEvents(t *testing.T) {
	sink := event.NewBufferedSink()
	g, err := OpenGarage("memory", "", WithSink(sink))
	if err != nil {
		t.Fatalf("OpenGarage error = %v", err)
	}
	defer func() { _ = g.Close() }()

	car, _ := New("car")
	rec, err := g.SaveVehicle(context.Background(), car)
	if err != nil {
		t.Fatalf("SaveVehicle error = %v", err)
	}

	saved := sink.HistoryWithFilter("vehicles", event.HistoryFilter{Op: "save"})
	if len(saved) != 1 {
		t.Fatalf("save events = %d, want 1", len(saved))
	}
	if saved[0].Meta["id"] != rec.ID {
		t.Errorf("event id = %v, want %q", saved[0].Meta["id"], rec.ID)
	}
	if saved[0].Meta["backend"] != "memory" {
		t.Errorf("event backend = %v, want %q", saved[0].Meta["backend"], "memory")
	}
}
