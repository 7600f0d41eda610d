// Package bridge demonstrates the Bridge pattern: remote controls (the
// abstraction) and devices (the implementation) vary independently and
// are connected only through the Device interface.
package bridge

import (
	"fmt"
	"io"
)

// Device is the implementation side of the bridge.
type Device interface {
	PowerOn()
	PowerOff()
	SetVolume(volume int)
	Volume() int
}

// Randomizer is the source of randomness behind the remote buttons.
// *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// appliance holds the state shared by the concrete devices.
type appliance struct {
	out    io.Writer
	label  string
	volume int
}

func (a *appliance) PowerOn()    { fmt.Fprintf(a.out, "%s is now ON\n", a.label) }
func (a *appliance) PowerOff()   { fmt.Fprintf(a.out, "%s is now OFF\n", a.label) }
func (a *appliance) Volume() int { return a.volume }

func (a *appliance) SetVolume(volume int) {
	a.volume = volume
	fmt.Fprintf(a.out, "%s volume set to %d\n", a.label, a.volume)
}

// TV starts at volume 10.
type TV struct {
	appliance
}

func NewTV(out io.Writer) *TV {
	return &TV{appliance{out: out, label: "TV", volume: 10}}
}

// Radio starts at volume 5.
type Radio struct {
	appliance
}

func NewRadio(out io.Writer) *Radio {
	return &Radio{appliance{out: out, label: "Radio", volume: 5}}
}

// RemoteControl is the abstraction side of the bridge.
type RemoteControl struct {
	out    io.Writer
	device Device
	rnd    Randomizer
}

func NewRemoteControl(out io.Writer, device Device, rnd Randomizer) *RemoteControl {
	return &RemoteControl{out: out, device: device, rnd: rnd}
}

// TogglePower flips a coin to decide whether the device is switched on or off.
func (r *RemoteControl) TogglePower() {
	fmt.Fprintln(r.out, "Toggling power...")
	if r.rnd.Intn(2) == 1 {
		r.device.PowerOn()
	} else {
		r.device.PowerOff()
	}
}

// VolumeUp sets a random volume between 11 and 20.
func (r *RemoteControl) VolumeUp() {
	r.device.SetVolume(11 + r.rnd.Intn(10))
}

// VolumeDown sets a random volume between 0 and 10.
func (r *RemoteControl) VolumeDown() {
	r.device.SetVolume(r.rnd.Intn(11))
}

// AdvancedRemoteControl extends the basic remote without touching devices.
type AdvancedRemoteControl struct {
	*RemoteControl
}

func NewAdvancedRemoteControl(out io.Writer, device Device, rnd Randomizer) *AdvancedRemoteControl {
	return &AdvancedRemoteControl{NewRemoteControl(out, device, rnd)}
}

func (r *AdvancedRemoteControl) Mute() {
	fmt.Fprintln(r.out, "Muting the device")
	r.device.SetVolume(0)
}

// Demo drives a TV with a basic remote and a radio with an advanced one.
func Demo(w io.Writer, rnd Randomizer) error {
	remote := NewRemoteControl(w, NewTV(w), rnd)
	remote.TogglePower()
	remote.VolumeUp()
	remote.VolumeDown()

	fmt.Fprintln(w)

	advanced := NewAdvancedRemoteControl(w, NewRadio(w), rnd)
	advanced.TogglePower()
	advanced.VolumeUp()
	advanced.Mute()
	return nil
}
