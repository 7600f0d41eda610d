package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		expr Expression
		want int
		text string
	}{
		{Number(7), 7, "7"},
		{Add(Number(5), Number(3)), 8, "(5 + 3)"},
		{Sub(Add(Number(5), Number(3)), Number(2)), 6, "((5 + 3) - 2)"},
		{Sub(Number(2), Sub(Number(5), Number(3))), 0, "(2 - (5 - 3))"},
		{Sub(Number(1), Number(4)), -3, "(1 - 4)"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.Interpret())
			assert.Equal(t, tt.text, tt.expr.String())
		})
	}
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t, "Result: 6\n", buf.String())
}
