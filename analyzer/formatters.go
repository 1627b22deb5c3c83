package analyzer

import (
	"fmt"
	"math"
)

// round2 rounds to two decimal places, the precision every reported
// average carries.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAverage renders an average the way the report tables show it.
func FormatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
