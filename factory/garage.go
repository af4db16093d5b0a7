package factory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gopatterns/patterns/event"
)

// ErrNotFound is returned when a requested vehicle ID does not exist in a
// garage.
var ErrNotFound = errors.New("not found")

// ErrUnknownDriver is returned by OpenGarage for an unrecognized driver
// tag. It is the factory's ErrUnknownVehicle one level down the stack.
var ErrUnknownDriver = errors.New("unknown garage driver")

// VehicleRecord is a persisted vehicle.
type VehicleRecord struct {
	// ID uniquely identifies the stored vehicle.
	ID string

	// Kind is the vehicle tag it was built from ("car", "truck", ...).
	Kind string

	// Description is the vehicle's operating description at save time.
	Description string

	// CreatedAt is when the record was saved.
	CreatedAt time.Time
}

// GarageStore persists built vehicles.
//
// Implementations:
//   - MemoryGarage: in-process maps, for tests and demos (garage_memory.go)
//   - SQLiteGarage: single-file database, zero setup (garage_sqlite.go)
//   - MySQLGarage: shared database for multi-process use (garage_mysql.go)
//
// All implementations are safe for concurrent use.
type GarageStore interface {
	// SaveVehicle persists a vehicle and returns the stored record,
	// including its assigned ID.
	SaveVehicle(ctx context.Context, v Vehicle) (VehicleRecord, error)

	// Vehicle retrieves a record by ID.
	// Returns ErrNotFound if the ID does not exist.
	Vehicle(ctx context.Context, id string) (VehicleRecord, error)

	// List returns all records ordered by creation time.
	List(ctx context.Context) ([]VehicleRecord, error)

	// Close releases any underlying resources. Safe to call twice.
	Close() error
}

// garageConfig collects options before a garage is opened.
type garageConfig struct {
	sink         event.Sink
	maxOpenConns int
}

// GarageOption is a functional option for OpenGarage.
type GarageOption func(*garageConfig) error

// WithSink reports save operations through the given event sink.
// A nil sink is replaced with a NullSink.
func WithSink(sink event.Sink) GarageOption {
	return func(cfg *garageConfig) error {
		if sink == nil {
			sink = event.NewNullSink()
		}
		cfg.sink = sink
		return nil
	}
}

// WithMaxOpenConns caps the database connection pool for the SQL-backed
// garages. Ignored by MemoryGarage. Must be positive.
func WithMaxOpenConns(n int) GarageOption {
	return func(cfg *garageConfig) error {
		if n <= 0 {
			return fmt.Errorf("max open conns must be positive, got %d", n)
		}
		cfg.maxOpenConns = n
		return nil
	}
}

// OpenGarage constructs a GarageStore keyed by driver tag.
//
// Supported drivers:
//   - "memory": dsn is ignored
//   - "sqlite": dsn is the database file path, or ":memory:"
//   - "mysql": dsn is a go-sql-driver DSN, e.g.
//     "user:pass@tcp(localhost:3306)/garage?parseTime=true"
//
// Unrecognized drivers return ErrUnknownDriver.
//
// Example:
//
//	garage, err := factory.OpenGarage("sqlite", "./garage.db",
//	    factory.WithSink(sink),
//	)
//	if err != nil {
//	    return err
//	}
//	defer garage.Close()
func OpenGarage(driver, dsn string, opts ...GarageOption) (GarageStore, error) {
	cfg := garageConfig{
		sink: event.NewNullSink(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("invalid garage option: %w", err)
		}
	}

	switch strings.ToLower(driver) {
	case "memory":
		return newMemoryGarage(cfg), nil
	case "sqlite":
		return newSQLiteGarage(dsn, cfg)
	case "mysql":
		return newMySQLGarage(dsn, cfg)
	default:
		return nil, fmt.Errorf("%q: %w", driver, ErrUnknownDriver)
	}
}

// newRecord builds the record for a vehicle about to be saved.
func newRecord(v Vehicle) VehicleRecord {
	return VehicleRecord{
		ID:          uuid.NewString(),
		Kind:        v.Kind(),
		Description: v.Describe(),
		CreatedAt:   time.Now().UTC(),
	}
}

// emitSaved reports a successful save through the configured sink.
func emitSaved(sink event.Sink, backend string, rec VehicleRecord) {
	sink.Emit(event.Event{
		Demo: "vehicles",
		Op:   "save",
		Msg:  "vehicle saved",
		Meta: map[string]interface{}{
			"backend": backend,
			"kind":    rec.Kind,
			"id":      rec.ID,
		},
	})
}
