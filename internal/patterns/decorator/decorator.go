// Package decorator demonstrates the Decorator pattern: coffee add-ons wrap
// a coffee and extend its cost and description without subclassing.
package decorator

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/gof-patterns/internal/format"
)

// Coffee is implemented by the base drink and by every add-on.
type Coffee interface {
	Cost() float64
	Description() string
}

// SimpleCoffee is the undecorated drink.
type SimpleCoffee struct{}

func (SimpleCoffee) Cost() float64       { return 5.00 }
func (SimpleCoffee) Description() string { return "Simple Coffee" }

// AddOn decorates a coffee with one extra ingredient.
type AddOn struct {
	coffee Coffee
	name   string
	price  float64
}

func (a AddOn) Cost() float64 { return a.coffee.Cost() + a.price }

func (a AddOn) Description() string { return a.coffee.Description() + ", " + a.name }

// WithMilk adds milk for 1.50.
func WithMilk(c Coffee) Coffee { return AddOn{coffee: c, name: "Milk", price: 1.50} }

// WithSugar adds sugar for 0.50.
func WithSugar(c Coffee) Coffee { return AddOn{coffee: c, name: "Sugar", price: 0.50} }

// WithWhippedCream adds whipped cream for 2.00.
func WithWhippedCream(c Coffee) Coffee {
	return AddOn{coffee: c, name: "Whipped Cream", price: 2.00}
}

// Receipt renders a coffee as "<description> | Cost: $<cost>".
func Receipt(c Coffee) string {
	return fmt.Sprintf("%s | Cost: $%s", c.Description(), format.Number(c.Cost()))
}

// Demo prints the receipt after each add-on is applied.
func Demo(w io.Writer) error {
	var coffee Coffee = SimpleCoffee{}
	fmt.Fprintln(w, Receipt(coffee))

	for _, decorate := range []func(Coffee) Coffee{WithMilk, WithSugar, WithWhippedCream} {
		coffee = decorate(coffee)
		fmt.Fprintln(w, Receipt(coffee))
	}
	return nil
}
