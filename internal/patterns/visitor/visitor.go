// Package visitor demonstrates the Visitor pattern: area and perimeter
// calculations live in visitors, so new operations on shapes need no
// change to the shape types.
package visitor

import (
	"fmt"
	"io"
	"math"

	"github.com/shinji-kodama/gof-patterns/internal/format"
)

type ShapeVisitor interface {
	VisitCircle(c *Circle)
	VisitRectangle(r *Rectangle)
}

type Shape interface {
	Accept(v ShapeVisitor)
}

type Circle struct {
	Radius float64
}

func (c *Circle) Accept(v ShapeVisitor) { v.VisitCircle(c) }

type Rectangle struct {
	Width, Height float64
}

func (r *Rectangle) Accept(v ShapeVisitor) { v.VisitRectangle(r) }

// AreaVisitor prints the area of each visited shape.
type AreaVisitor struct {
	out io.Writer
}

func NewAreaVisitor(out io.Writer) *AreaVisitor { return &AreaVisitor{out: out} }

func (v *AreaVisitor) VisitCircle(c *Circle) {
	fmt.Fprintf(v.out, "Area of Circle: %s\n", format.Number(math.Pi*math.Pow(c.Radius, 2)))
}

func (v *AreaVisitor) VisitRectangle(r *Rectangle) {
	fmt.Fprintf(v.out, "Area of Rectangle: %s\n", format.Number(r.Width*r.Height))
}

// PerimeterVisitor prints the perimeter of each visited shape.
type PerimeterVisitor struct {
	out io.Writer
}

func NewPerimeterVisitor(out io.Writer) *PerimeterVisitor { return &PerimeterVisitor{out: out} }

func (v *PerimeterVisitor) VisitCircle(c *Circle) {
	fmt.Fprintf(v.out, "Perimeter of Circle: %s\n", format.Number(2*math.Pi*c.Radius))
}

func (v *PerimeterVisitor) VisitRectangle(r *Rectangle) {
	fmt.Fprintf(v.out, "Perimeter of Rectangle: %s\n", format.Number(2*(r.Width+r.Height)))
}

// Demo computes the area and then the perimeter of a circle and a rectangle.
func Demo(w io.Writer) error {
	shapes := []Shape{&Circle{Radius: 5}, &Rectangle{Width: 4, Height: 6}}

	for _, v := range []ShapeVisitor{NewAreaVisitor(w), NewPerimeterVisitor(w)} {
		for _, s := range shapes {
			s.Accept(v)
		}
	}
	return nil
}
