// Package command demonstrates the Command pattern: requests to household
// appliances are wrapped in objects so a remote control can trigger them
// without knowing what they do.
package command

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoCommand is returned when the remote button is pressed before a
// command has been assigned.
var ErrNoCommand = errors.New("no command assigned")

// Command is a request packaged as a value.
type Command interface {
	Execute()
}

// Func adapts a plain function to the Command interface.
type Func func()

func (f Func) Execute() { f() }

// Light is a receiver.
type Light struct {
	out io.Writer
}

func NewLight(out io.Writer) *Light { return &Light{out: out} }

func (l *Light) TurnOn()  { fmt.Fprintln(l.out, "The light is ON") }
func (l *Light) TurnOff() { fmt.Fprintln(l.out, "The light is OFF") }

// Fan is a receiver.
type Fan struct {
	out io.Writer
}

func NewFan(out io.Writer) *Fan { return &Fan{out: out} }

func (f *Fan) Start() { fmt.Fprintln(f.out, "The fan is spinning") }
func (f *Fan) Stop()  { fmt.Fprintln(f.out, "The fan has stopped") }

type LightOnCommand struct{ light *Light }

func NewLightOnCommand(l *Light) LightOnCommand { return LightOnCommand{light: l} }

func (c LightOnCommand) Execute() { c.light.TurnOn() }

type LightOffCommand struct{ light *Light }

func NewLightOffCommand(l *Light) LightOffCommand { return LightOffCommand{light: l} }

func (c LightOffCommand) Execute() { c.light.TurnOff() }

type FanStartCommand struct{ fan *Fan }

func NewFanStartCommand(f *Fan) FanStartCommand { return FanStartCommand{fan: f} }

func (c FanStartCommand) Execute() { c.fan.Start() }

type FanStopCommand struct{ fan *Fan }

func NewFanStopCommand(f *Fan) FanStopCommand { return FanStopCommand{fan: f} }

func (c FanStopCommand) Execute() { c.fan.Stop() }

// RemoteControl is the invoker. It holds one command at a time.
type RemoteControl struct {
	command Command
}

func (r *RemoteControl) SetCommand(c Command) {
	r.command = c
}

// PressButton executes the current command.
func (r *RemoteControl) PressButton() error {
	if r.command == nil {
		return ErrNoCommand
	}
	r.command.Execute()
	return nil
}

// Demo switches the light on and off, then starts and stops the fan.
func Demo(w io.Writer) error {
	light := NewLight(w)
	fan := NewFan(w)

	remote := &RemoteControl{}
	for _, c := range []Command{
		NewLightOnCommand(light),
		NewLightOffCommand(light),
		NewFanStartCommand(fan),
		NewFanStopCommand(fan),
	} {
		remote.SetCommand(c)
		if err := remote.PressButton(); err != nil {
			return err
		}
	}
	return nil
}
