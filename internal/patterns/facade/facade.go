// Package facade demonstrates the Facade pattern: a home theater exposes
// two calls that drive four subsystems in the right order.
package facade

import (
	"fmt"
	"io"
)

type DVDPlayer struct{ out io.Writer }

func (d *DVDPlayer) On()                    { fmt.Fprintln(d.out, "DVD Player is on.") }
func (d *DVDPlayer) Off()                   { fmt.Fprintln(d.out, "DVD Player is off.") }
func (d *DVDPlayer) PlayMovie(movie string) { fmt.Fprintf(d.out, "Playing movie: %s\n", movie) }

type Projector struct{ out io.Writer }

func (p *Projector) On()             { fmt.Fprintln(p.out, "Projector is on.") }
func (p *Projector) Off()            { fmt.Fprintln(p.out, "Projector is off.") }
func (p *Projector) WideScreenMode() { fmt.Fprintln(p.out, "Projector in widescreen mode.") }

type SoundSystem struct{ out io.Writer }

func (s *SoundSystem) On()                 { fmt.Fprintln(s.out, "Sound System is on.") }
func (s *SoundSystem) Off()                { fmt.Fprintln(s.out, "Sound System is off.") }
func (s *SoundSystem) SetVolume(level int) { fmt.Fprintf(s.out, "Sound System volume set to %d.\n", level) }

type Lights struct{ out io.Writer }

func (l *Lights) On()           { fmt.Fprintln(l.out, "Lights are on.") }
func (l *Lights) Dim(level int) { fmt.Fprintf(l.out, "Lights dimmed to %d%%.\n", level) }

// HomeTheater is the facade over the subsystems.
type HomeTheater struct {
	out       io.Writer
	dvd       *DVDPlayer
	projector *Projector
	sound     *SoundSystem
	lights    *Lights
}

// NewHomeTheater wires all subsystems to write to out.
func NewHomeTheater(out io.Writer) *HomeTheater {
	return &HomeTheater{
		out:       out,
		dvd:       &DVDPlayer{out: out},
		projector: &Projector{out: out},
		sound:     &SoundSystem{out: out},
		lights:    &Lights{out: out},
	}
}

func (h *HomeTheater) WatchMovie(movie string) {
	fmt.Fprintln(h.out, "Preparing to watch a movie...")
	h.lights.Dim(20)
	h.sound.On()
	h.sound.SetVolume(10)
	h.projector.On()
	h.projector.WideScreenMode()
	h.dvd.On()
	h.dvd.PlayMovie(movie)
	fmt.Fprintln(h.out, "Enjoy your movie!")
}

func (h *HomeTheater) EndMovie() {
	fmt.Fprintln(h.out, "Shutting down the home theater...")
	h.lights.On()
	h.dvd.Off()
	h.projector.Off()
	h.sound.Off()
	fmt.Fprintln(h.out, "Goodbye!")
}

// Demo watches movie and shuts the theater down.
func Demo(w io.Writer, movie string) error {
	theater := NewHomeTheater(w)
	theater.WatchMovie(movie)
	theater.EndMovie()
	return nil
}
