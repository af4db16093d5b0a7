// Package factory demonstrates the Simple Factory pattern with vehicles.
//
// Two factory styles are shown:
//   - New: a fixed factory that switches on a tag, the classic form
//   - Registry: an extensible factory where constructors are registered
//     at runtime, the form this module's store family actually uses
//
// The same idea then appears at infrastructure scale: OpenGarage constructs
// a persistence backend (memory, SQLite, MySQL) keyed by a driver tag.
package factory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVehicle is returned when a factory is asked for a vehicle tag
// it does not recognize.
var ErrUnknownVehicle = errors.New("unknown vehicle type")

// Vehicle is the product interface. Factories return Vehicle, never a
// concrete type, so callers stay decoupled from the construction logic.
type Vehicle interface {
	// Kind returns the normalized tag this vehicle was built from.
	Kind() string

	// Describe returns a human-readable description of operating the
	// vehicle, e.g. "Driving a car".
	Describe() string
}

// Car is a four-wheeled product.
type Car struct{}

// Kind returns "car".
func (Car) Kind() string { return "car" }

// Describe returns the car's operating description.
func (Car) Describe() string { return "Driving a car" }

// Truck is a heavy product.
type Truck struct{}

// Kind returns "truck".
func (Truck) Kind() string { return "truck" }

// Describe returns the truck's operating description.
func (Truck) Describe() string { return "Driving a truck" }

// Motorcycle is a two-wheeled product.
type Motorcycle struct{}

// Kind returns "motorcycle".
func (Motorcycle) Kind() string { return "motorcycle" }

// Describe returns the motorcycle's operating description.
func (Motorcycle) Describe() string { return "Riding a motorcycle" }

// New is the simple factory: it centralizes construction keyed by tag.
//
// Tags are matched case-insensitively, so New("Car") and New("car") build
// the same product. Unrecognized tags return ErrUnknownVehicle.
//
// Example:
//
//	v, err := factory.New("Car")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(v.Describe()) // "Driving a car"
func New(kind string) (Vehicle, error) {
	switch strings.ToLower(kind) {
	case "car":
		return Car{}, nil
	case "truck":
		return Truck{}, nil
	case "motorcycle":
		return Motorcycle{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownVehicle)
	}
}
