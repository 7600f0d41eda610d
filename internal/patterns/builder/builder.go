// Package builder demonstrates the Builder pattern: a director runs the
// same construction steps against different builders to produce houses
// with different parts.
package builder

import (
	"fmt"
	"io"
	"strings"
)

// House is the product. Empty parts are reported as "None".
type House struct {
	Walls   string
	Doors   string
	Windows string
	Roof    string
	Garage  string
}

// Specifications renders every part of the house, one per line.
func (h *House) Specifications() string {
	var b strings.Builder
	b.WriteString("House Specifications:\n")
	for _, part := range []struct{ name, value string }{
		{"Walls", h.Walls},
		{"Doors", h.Doors},
		{"Windows", h.Windows},
		{"Roof", h.Roof},
		{"Garage", h.Garage},
	} {
		value := part.value
		if value == "" {
			value = "None"
		}
		fmt.Fprintf(&b, "%s: %s\n", part.name, value)
	}
	return b.String()
}

// HouseBuilder constructs a house one part at a time.
type HouseBuilder interface {
	BuildWalls()
	BuildDoors()
	BuildWindows()
	BuildRoof()
	BuildGarage()
	House() *House
}

// LuxuryHouseBuilder fits high-end parts and a garage.
type LuxuryHouseBuilder struct {
	house *House
}

func NewLuxuryHouseBuilder() *LuxuryHouseBuilder {
	return &LuxuryHouseBuilder{house: &House{}}
}

func (b *LuxuryHouseBuilder) BuildWalls()   { b.house.Walls = "Luxury Walls" }
func (b *LuxuryHouseBuilder) BuildDoors()   { b.house.Doors = "Luxury Doors" }
func (b *LuxuryHouseBuilder) BuildWindows() { b.house.Windows = "Large Windows" }
func (b *LuxuryHouseBuilder) BuildRoof()    { b.house.Roof = "High-End Roof" }
func (b *LuxuryHouseBuilder) BuildGarage()  { b.house.Garage = "Spacious Garage" }
func (b *LuxuryHouseBuilder) House() *House { return b.house }

// SimpleHouseBuilder fits basic parts. Simple houses have no garage.
type SimpleHouseBuilder struct {
	house *House
}

func NewSimpleHouseBuilder() *SimpleHouseBuilder {
	return &SimpleHouseBuilder{house: &House{}}
}

func (b *SimpleHouseBuilder) BuildWalls()   { b.house.Walls = "Simple Walls" }
func (b *SimpleHouseBuilder) BuildDoors()   { b.house.Doors = "Basic Doors" }
func (b *SimpleHouseBuilder) BuildWindows() { b.house.Windows = "Standard Windows" }
func (b *SimpleHouseBuilder) BuildRoof()    { b.house.Roof = "Simple Roof" }
func (b *SimpleHouseBuilder) BuildGarage()  {}
func (b *SimpleHouseBuilder) House() *House { return b.house }

// Director owns the construction order.
type Director struct {
	builder HouseBuilder
}

func NewDirector(b HouseBuilder) *Director {
	return &Director{builder: b}
}

// BuildHouse runs every step in order and returns the finished house.
func (d *Director) BuildHouse() *House {
	d.builder.BuildWalls()
	d.builder.BuildDoors()
	d.builder.BuildWindows()
	d.builder.BuildRoof()
	d.builder.BuildGarage()
	return d.builder.House()
}

// Demo builds a luxury house and a simple house and prints both.
func Demo(w io.Writer) error {
	luxury := NewDirector(NewLuxuryHouseBuilder()).BuildHouse()
	fmt.Fprint(w, luxury.Specifications())

	fmt.Fprintln(w)

	simple := NewDirector(NewSimpleHouseBuilder()).BuildHouse()
	fmt.Fprint(w, simple.Specifications())
	return nil
}
