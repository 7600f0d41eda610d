// Package abstractfactory demonstrates the Abstract Factory pattern: a
// family of related UI widgets is created through one factory interface,
// so client code never names a concrete widget type.
package abstractfactory

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownPlatform is returned when no factory exists for a platform name.
var ErrUnknownPlatform = errors.New("unknown UI platform")

// Button is a clickable widget.
type Button interface {
	Render() string
}

// Checkbox is a toggleable widget.
type Checkbox interface {
	Render() string
}

type WindowsButton struct{}

func (WindowsButton) Render() string { return "Rendering Windows-style Button" }

type MacButton struct{}

func (MacButton) Render() string { return "Rendering Mac-style Button" }

type WindowsCheckbox struct{}

func (WindowsCheckbox) Render() string { return "Rendering Windows-style Checkbox" }

type MacCheckbox struct{}

func (MacCheckbox) Render() string { return "Rendering Mac-style Checkbox" }

// UIFactory creates one consistent family of widgets.
type UIFactory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

// WindowsFactory creates Windows-style widgets.
type WindowsFactory struct{}

func (WindowsFactory) CreateButton() Button     { return WindowsButton{} }
func (WindowsFactory) CreateCheckbox() Checkbox { return WindowsCheckbox{} }

// MacFactory creates Mac-style widgets.
type MacFactory struct{}

func (MacFactory) CreateButton() Button     { return MacButton{} }
func (MacFactory) CreateCheckbox() Checkbox { return MacCheckbox{} }

// Platform names a widget family.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformMac     Platform = "mac"
)

// ParsePlatform converts a case-insensitive platform name to a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformWindows, PlatformMac:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: windows, mac)", ErrUnknownPlatform, s)
	}
}

// FactoryFor returns the widget factory for the named platform.
func FactoryFor(name string) (UIFactory, error) {
	p, err := ParsePlatform(name)
	if err != nil {
		return nil, err
	}
	if p == PlatformMac {
		return MacFactory{}, nil
	}
	return WindowsFactory{}, nil
}

// RenderUI builds a button and a checkbox with f and renders both to w.
// It only depends on the factory interface.
func RenderUI(w io.Writer, f UIFactory) {
	button := f.CreateButton()
	checkbox := f.CreateCheckbox()

	fmt.Fprintln(w, button.Render())
	fmt.Fprintln(w, checkbox.Render())
}

// Demo picks the factory for platform and renders the UI with it.
func Demo(w io.Writer, platform string) error {
	factory, err := FactoryFor(platform)
	if err != nil {
		return err
	}
	RenderUI(w, factory)
	return nil
}
