package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	radius := 5.0

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "whole value drops decimals", in: 100.0, want: "100"},
		{name: "zero", in: 0, want: "0"},
		{name: "single decimal", in: 6.5, want: "6.5"},
		{name: "negative", in: -2.25, want: "-2.25"},
		{name: "circle area", in: math.Pi * math.Pow(radius, 2), want: "78.53981633974483"},
		{name: "circle perimeter", in: 2 * math.Pi * radius, want: "31.41592653589793"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.in))
		})
	}
}
