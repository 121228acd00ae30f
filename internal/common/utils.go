package common

import "math"

// RoundTemp rounds a temperature to the nearest whole degree for display.
func RoundTemp(v float64) int {
	return int(math.Round(v))
}
