// Package interpreter demonstrates the Interpreter pattern: arithmetic
// expressions are trees of small types, each knowing how to evaluate itself.
package interpreter

import (
	"fmt"
	"io"
)

// Expression is a node of the expression tree.
type Expression interface {
	Interpret() int
	String() string
}

// Number is a terminal expression.
type Number int

func (n Number) Interpret() int { return int(n) }
func (n Number) String() string { return fmt.Sprint(int(n)) }

// Addition evaluates Left + Right.
type Addition struct {
	Left, Right Expression
}

func (a Addition) Interpret() int { return a.Left.Interpret() + a.Right.Interpret() }
func (a Addition) String() string { return fmt.Sprintf("(%s + %s)", a.Left, a.Right) }

// Subtraction evaluates Left - Right.
type Subtraction struct {
	Left, Right Expression
}

func (s Subtraction) Interpret() int { return s.Left.Interpret() - s.Right.Interpret() }
func (s Subtraction) String() string { return fmt.Sprintf("(%s - %s)", s.Left, s.Right) }

func Add(left, right Expression) Expression { return Addition{Left: left, Right: right} }
func Sub(left, right Expression) Expression { return Subtraction{Left: left, Right: right} }

// Demo evaluates (5 + 3) - 2.
func Demo(w io.Writer) error {
	expr := Sub(Add(Number(5), Number(3)), Number(2))
	fmt.Fprintf(w, "Result: %d\n", expr.Interpret())
	return nil
}
