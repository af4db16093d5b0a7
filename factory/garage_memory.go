package factory

import (
	"context"
	"sort"
	"sync"

	"github.com/gopatterns/patterns/event"
)

// MemoryGarage is an in-memory GarageStore.
//
// Designed for:
//   - Tests and examples
//   - Short-lived demos where persistence isn't required
//
// Data is lost when the process exits. Thread-safe.
type MemoryGarage struct {
	mu       sync.RWMutex
	vehicles map[string]VehicleRecord
	sink     event.Sink
}

func newMemoryGarage(cfg garageConfig) *MemoryGarage {
	return &MemoryGarage{
		vehicles: make(map[string]VehicleRecord),
		sink:     cfg.sink,
	}
}

// SaveVehicle stores the vehicle under a fresh ID.
func (m *MemoryGarage) SaveVehicle(_ context.Context, v Vehicle) (VehicleRecord, error) {
	rec := newRecord(v)

	m.mu.Lock()
	m.vehicles[rec.ID] = rec
	m.mu.Unlock()

	emitSaved(m.sink, "memory", rec)
	return rec, nil
}

// Vehicle retrieves a record by ID, or ErrNotFound.
func (m *MemoryGarage) Vehicle(_ context.Context, id string) (VehicleRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.vehicles[id]
	if !ok {
		return VehicleRecord{}, ErrNotFound
	}
	return rec, nil
}

// List returns all records ordered by creation time.
func (m *MemoryGarage) List(_ context.Context) ([]VehicleRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]VehicleRecord, 0, len(m.vehicles))
	for _, rec := range m.vehicles {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Close is a no-op for the in-memory garage.
func (m *MemoryGarage) Close() error {
	return nil
}
