package garage

import (
	"fmt"

	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

type Garage struct {
	vehicles []Vehicle
	out      sink.Sink
}

func NewGarage(out sink.Sink) *Garage {
	return &Garage{out: out}
}

func (g *Garage) AddVehicle(v Vehicle) {
	g.vehicles = append(g.vehicles, v)
	g.out.Write(fmt.Sprintf("%s added to garage", v.Details()))
}

// RemoveVehicle drops the first occurrence of v. A vehicle that is not parked
// here is ignored and nothing is emitted.
func (g *Garage) RemoveVehicle(v Vehicle) {
	for i, parked := range g.vehicles {
		if parked == v {
			g.vehicles = append(g.vehicles[:i:i], g.vehicles[i+1:]...)
			g.out.Write(fmt.Sprintf("%s removed from garage", v.Details()))
			return
		}
	}
}

func (g *Garage) ListVehicles() {
	for _, v := range g.vehicles {
		d := v.Details()
		g.out.Write(fmt.Sprintf("%s, Year: %d", d, d.Year))
	}
}

func (g *Garage) Vehicles() []Vehicle {
	return append([]Vehicle(nil), g.vehicles...)
}

type Fleet struct {
	garages []*Garage
	out     sink.Sink
}

func NewFleet(out sink.Sink) *Fleet {
	return &Fleet{out: out}
}

func (f *Fleet) AddGarage(g *Garage) {
	f.garages = append(f.garages, g)
	f.out.Write("Garage added")
}

// RemoveGarage drops the first occurrence of g; unknown garages are ignored.
func (f *Fleet) RemoveGarage(g *Garage) {
	for i, owned := range f.garages {
		if owned == g {
			f.garages = append(f.garages[:i:i], f.garages[i+1:]...)
			f.out.Write("Garage removed")
			return
		}
	}
}

// ListGarages writes a header per garage followed by its vehicles.
func (f *Fleet) ListGarages() {
	for _, g := range f.garages {
		f.out.Write("Garage:")
		g.ListVehicles()
	}
}

func (f *Fleet) Garages() []*Garage {
	return append([]*Garage(nil), f.garages...)
}
