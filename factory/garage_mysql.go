package factory

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/gopatterns/patterns/event"
)

// MySQLGarage is a MySQL/MariaDB-backed GarageStore.
//
// Designed for:
//   - Shared garages used by multiple processes
//   - Demos of the same factory selecting a networked backend
//
// The DSN follows go-sql-driver conventions:
//
//	user:password@tcp(localhost:3306)/garage?parseTime=true
//
// parseTime=true is required so created_at scans into time.Time.
//
// Never hardcode credentials; read the DSN from the environment:
//
//	dsn := os.Getenv("MYSQL_DSN")
type MySQLGarage struct {
	db   *sql.DB
	sink event.Sink

	mu     sync.Mutex
	closed bool
}

func newMySQLGarage(dsn string, cfg garageConfig) (*MySQLGarage, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	maxOpen := cfg.maxOpenConns
	if maxOpen == 0 {
		maxOpen = 25
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	g := &MySQLGarage{db: db, sink: cfg.sink}
	if err := g.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return g, nil
}

func (g *MySQLGarage) createTables(ctx context.Context) error {
	_, err := g.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS garage_vehicles (
			id          VARCHAR(36) PRIMARY KEY,
			kind        VARCHAR(64)  NOT NULL,
			description VARCHAR(255) NOT NULL,
			created_at  DATETIME(6)  NOT NULL,
			INDEX idx_created_at (created_at)
		)`)
	return err
}

// SaveVehicle persists the vehicle and returns the stored record.
func (g *MySQLGarage) SaveVehicle(ctx context.Context, v Vehicle) (VehicleRecord, error) {
	rec := newRecord(v)

	_, err := g.db.ExecContext(ctx,
		`INSERT INTO garage_vehicles (id, kind, description, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.Description, rec.CreatedAt,
	)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to save vehicle: %w", err)
	}

	emitSaved(g.sink, "mysql", rec)
	return rec, nil
}

// Vehicle retrieves a record by ID, or ErrNotFound.
func (g *MySQLGarage) Vehicle(ctx context.Context, id string) (VehicleRecord, error) {
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
func (g *MySQLGarage) List(ctx context.Context) ([]VehicleRecord, error) {
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
func (g *MySQLGarage) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	g.closed = true
	return g.db.Close()
}
