package utils

import (
	"math"
	"strconv"
)

func RoundToXDp(f float64, dp uint8) float64 {
	e := math.Pow(10, float64(dp))
	return math.Round(f*e) / e
}

func BoolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// FormatNumber prints a value the way it would be written on a graph: no trailing zeros and no float noise, so
// 2.5000000001 becomes "2.5" and 10 stays "10".
func FormatNumber(f float64) string {
	f = RoundToXDp(f, 6)
	if f == 0 {
		// avoid "-0"
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatCoord prints an SVG coordinate with at most 2 decimal places.
func FormatCoord(f float64) string {
	return strconv.FormatFloat(RoundToXDp(f, 2), 'f', -1, 64)
}
