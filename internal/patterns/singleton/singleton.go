// Package singleton demonstrates the Singleton pattern. Go has no private
// constructors; the single instance is guarded by sync.Once instead, which
// also makes the first access safe from concurrent goroutines.
package singleton

import (
	"fmt"
	"io"
	"sync"
)

// Resource is the type with exactly one shared instance.
type Resource struct {
	out io.Writer
}

func (r *Resource) DoSomething() {
	fmt.Fprintln(r.out, "Doing something with the singleton instance.")
}

// Lazy holds a value that is initialized on first use, exactly once.
type Lazy[T any] struct {
	once  sync.Once
	init  func() T
	value T
}

func NewLazy[T any](init func() T) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the value, running the initializer if this is the first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.init()
	})
	return l.value
}

// NewResourceHolder returns a holder whose resource announces its
// initialization on out.
func NewResourceHolder(out io.Writer) *Lazy[*Resource] {
	return NewLazy(func() *Resource {
		fmt.Fprintln(out, "Initializing resources...")
		return &Resource{out: out}
	})
}

var instance = NewLazy(func() *Resource {
	return &Resource{out: io.Discard}
})

// Instance returns the process-wide resource.
func Instance() *Resource {
	return instance.Get()
}

// Demo fetches the instance twice and confirms both are the same object.
func Demo(w io.Writer) error {
	holder := NewResourceHolder(w)

	first := holder.Get()
	first.DoSomething()

	second := holder.Get()
	if first == second {
		fmt.Fprintln(w, "Both instances are the same.")
	}
	return nil
}
