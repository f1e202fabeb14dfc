// Package garage is the vehicle registry example: cars and motorcycles parked
// in garages, and a fleet of garages.
package garage

import (
	"fmt"

	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

// Details identifies a vehicle.
type Details struct {
	Brand string
	Model string
	Year  int
}

func (d Details) String() string {
	return d.Brand + " " + d.Model
}

type Vehicle interface {
	Details() Details
	StartEngine()
	StopEngine()
}

// engine holds what every vehicle kind shares.
type engine struct {
	details Details
	out     sink.Sink
}

func (e *engine) Details() Details {
	return e.details
}

func (e *engine) StartEngine() {
	e.out.Write(fmt.Sprintf("%s engine started", e.details))
}

func (e *engine) StopEngine() {
	e.out.Write(fmt.Sprintf("%s engine stopped", e.details))
}

type Car struct {
	engine
	Doors        int
	Transmission string
}

func NewCar(brand, model string, year, doors int, transmission string, out sink.Sink) *Car {
	return &Car{
		engine:       engine{details: Details{Brand: brand, Model: model, Year: year}, out: out},
		Doors:        doors,
		Transmission: transmission,
	}
}

type Motorcycle struct {
	engine
	Body string
	// HasBox reports whether a top box is fitted.
	HasBox bool
}

func NewMotorcycle(brand, model string, year int, body string, hasBox bool, out sink.Sink) *Motorcycle {
	return &Motorcycle{
		engine: engine{details: Details{Brand: brand, Model: model, Year: year}, out: out},
		Body:   body,
		HasBox: hasBox,
	}
}

// StartEngine on a motorcycle kicks it over instead of turning a key.
func (m *Motorcycle) StartEngine() {
	m.out.Write(fmt.Sprintf("%s engine kicked over", m.details))
}
