package visitor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kindVisitor records which visit method each shape dispatched to.
type kindVisitor struct {
	kinds []string
}

func (k *kindVisitor) VisitCircle(*Circle)       { k.kinds = append(k.kinds, "circle") }
func (k *kindVisitor) VisitRectangle(*Rectangle) { k.kinds = append(k.kinds, "rectangle") }

func TestAccept_DoubleDispatch(t *testing.T) {
	k := &kindVisitor{}
	for _, s := range []Shape{&Rectangle{}, &Circle{}, &Rectangle{}} {
		s.Accept(k)
	}
	assert.Equal(t, []string{"rectangle", "circle", "rectangle"}, k.kinds)
}

func TestAreaVisitor(t *testing.T) {
	var buf bytes.Buffer
	v := NewAreaVisitor(&buf)
	(&Circle{Radius: 1}).Accept(v)
	(&Rectangle{Width: 2.5, Height: 2}).Accept(v)

	assert.Equal(t, "Area of Circle: 3.141592653589793\nArea of Rectangle: 5\n", buf.String())
}

func TestPerimeterVisitor(t *testing.T) {
	var buf bytes.Buffer
	v := NewPerimeterVisitor(&buf)
	(&Rectangle{Width: 1.5, Height: 2}).Accept(v)

	assert.Equal(t, "Perimeter of Rectangle: 7\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	want := "Area of Circle: 78.53981633974483\n" +
		"Area of Rectangle: 24\n" +
		"Perimeter of Circle: 31.41592653589793\n" +
		"Perimeter of Rectangle: 20\n"
	assert.Equal(t, want, buf.String())
}
