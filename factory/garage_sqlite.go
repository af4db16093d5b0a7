package factory

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/gopatterns/patterns/event"
)

// SQLiteGarage is a SQLite-backed GarageStore.
//
// It stores vehicles in a single-file database. Designed for:
//   - Development with zero setup
//   - Single-process demos that should survive restarts
//
// WAL mode is enabled for concurrent reads.
type SQLiteGarage struct {
	db   *sql.DB
	sink event.Sink

	mu     sync.Mutex
	closed bool
}

// newSQLiteGarage opens (and if necessary creates) the database at path.
//
// Path may be a file path or ":memory:" for an in-memory database that is
// lost on Close.
func newSQLiteGarage(path string, cfg garageConfig) (*SQLiteGarage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	g := &SQLiteGarage{db: db, sink: cfg.sink}
	if err := g.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return g, nil
}

func (g *SQLiteGarage) createTables(ctx context.Context) error {
	_, err := g.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS garage_vehicles (
			id          TEXT PRIMARY KEY,
			kind        TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL
		)`)
	return err
}

// SaveVehicle persists the vehicle and returns the stored record.
func (g *SQLiteGarage) SaveVehicle(ctx context.Context, v Vehicle) (VehicleRecord, error) {
	rec := newRecord(v)

	_, err := g.db.ExecContext(ctx,
		`INSERT INTO garage_vehicles (id, kind, description, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.Description, rec.CreatedAt,
	)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to save vehicle: %w", err)
	}

	emitSaved(g.sink, "sqlite", rec)
	return rec, nil
}

// Vehicle retrieves a record by ID, or ErrNotFound.
func (g *SQLiteGarage) Vehicle(ctx context.Context, id string) (VehicleRecord, error) {
	var rec VehicleRecord
	err := g.db.QueryRowContext(ctx,
		`SELECT id, kind, description, created_at FROM garage_vehicles WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.Kind, &rec.Description, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return VehicleRecord{}, ErrNotFound
	}
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to load vehicle: %w", err)
	}
	return rec, nil
}

// List returns all records ordered by creation time.
func (g *SQLiteGarage) List(ctx context.Context) ([]VehicleRecord, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT id, kind, description, created_at FROM garage_vehicles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []VehicleRecord
	for rows.Next() {
		var rec VehicleRecord
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vehicles: %w", err)
	}
	return out, nil
}

// Close closes the underlying database. Safe to call twice.
func (g *SQLiteGarage) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	g.closed = true
	return g.db.Close()
}
