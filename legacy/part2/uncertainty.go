package part2

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MeasurementUncertainty returns the combined standard uncertainty of
// independent measurement components:
//
//	u = sqrt(Σ ci²)
//
// Component signs are irrelevant. An empty component list yields 0.
func MeasurementUncertainty(components []float64) float64 {
	if len(components) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(components, components))
}
