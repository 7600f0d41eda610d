// Package proxy demonstrates the Proxy pattern: an image proxy defers the
// expensive load of the real image until it is first displayed.
package proxy

import (
	"fmt"
	"io"
)

type Image interface {
	Display()
}

// RealImage loads its file as soon as it is created.
type RealImage struct {
	out      io.Writer
	filename string
}

func NewRealImage(out io.Writer, filename string) *RealImage {
	img := &RealImage{out: out, filename: filename}
	img.load()
	return img
}

func (i *RealImage) load() {
	fmt.Fprintf(i.out, "Loading image from file: %s\n", i.filename)
}

func (i *RealImage) Display() {
	fmt.Fprintf(i.out, "Displaying image: %s\n", i.filename)
}

// ImageProxy stands in for a RealImage and creates it on first Display.
type ImageProxy struct {
	out      io.Writer
	filename string
	real     *RealImage
}

func NewImageProxy(out io.Writer, filename string) *ImageProxy {
	return &ImageProxy{out: out, filename: filename}
}

func (p *ImageProxy) Display() {
	if p.real == nil {
		p.real = NewRealImage(p.out, p.filename)
	}
	p.real.Display()
}

// Loaded reports whether the real image has been created yet.
func (p *ImageProxy) Loaded() bool {
	return p.real != nil
}

// Demo creates two proxies and displays the first one twice.
func Demo(w io.Writer) error {
	image1 := NewImageProxy(w, "photo1.jpg")
	image2 := NewImageProxy(w, "photo2.jpg")

	fmt.Fprintln(w, "Image proxies created.")

	image1.Display()
	image1.Display()
	image2.Display()
	return nil
}
