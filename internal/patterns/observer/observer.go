// Package observer demonstrates the Observer pattern: displays subscribe to
// a weather station and are notified on every temperature change.
package observer

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/gof-patterns/internal/format"
)

// Observer receives temperature updates.
type Observer interface {
	Update(temperature float64)
}

// Subject manages observers and notifies them.
type Subject interface {
	Attach(o Observer)
	Detach(o Observer)
	Notify()
}

// WeatherStation is the subject. Observers are notified in attach order.
type WeatherStation struct {
	observers   []Observer
	temperature float64
}

func (s *WeatherStation) Attach(o Observer) {
	s.observers = append(s.observers, o)
}

// Detach removes every registration of o. Observers are compared by identity.
func (s *WeatherStation) Detach(o Observer) {
	kept := s.observers[:0]
	for _, existing := range s.observers {
		if existing != o {
			kept = append(kept, existing)
		}
	}
	s.observers = kept
}

func (s *WeatherStation) SetTemperature(t float64) {
	s.temperature = t
	s.Notify()
}

func (s *WeatherStation) Notify() {
	for _, o := range s.observers {
		o.Update(s.temperature)
	}
}

// display is the shared behavior of the concrete displays.
type display struct {
	out         io.Writer
	label       string
	temperature float64
}

func (d *display) Update(temperature float64) {
	d.temperature = temperature
	fmt.Fprintf(d.out, "%s: Temperature updated to %s°C\n", d.label, format.Number(d.temperature))
}

// Temperature returns the last value the display was notified about.
func (d *display) Temperature() float64 { return d.temperature }

type PhoneDisplay struct{ display }

func NewPhoneDisplay(out io.Writer) *PhoneDisplay {
	return &PhoneDisplay{display{out: out, label: "Phone Display"}}
}

type WindowDisplay struct{ display }

func NewWindowDisplay(out io.Writer) *WindowDisplay {
	return &WindowDisplay{display{out: out, label: "Window Display"}}
}

// Demo notifies both displays twice, then detaches the phone display.
func Demo(w io.Writer) error {
	station := &WeatherStation{}
	phone := NewPhoneDisplay(w)
	window := NewWindowDisplay(w)

	station.Attach(phone)
	station.Attach(window)

	station.SetTemperature(25.0)
	station.SetTemperature(30.0)

	station.Detach(phone)
	station.SetTemperature(28.0)
	return nil
}
