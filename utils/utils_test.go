package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{2.5, "2.5"},
		{0.1 + 0.2, "0.3"},
		{95.5, "95.5"},
		{1400, "1400"},
		{math.Copysign(0, -1), "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "80", FormatCoord(80))
	assert.Equal(t, "123.46", FormatCoord(123.456))
}

func TestRoundToXDp(t *testing.T) {
	assert.Equal(t, 1.23, RoundToXDp(1.2345, 2))
	assert.Equal(t, 2.0, RoundToXDp(1.999, 1))
}

func TestBoolToFloat(t *testing.T) {
	assert.Equal(t, 1.0, BoolToFloat(true))
	assert.Equal(t, 0.0, BoolToFloat(false))
}
