package part2

import "testing"

func TestMeasurementUncertainty(t *testing.T) {
	tests := []struct {
		name       string
		components []float64
		want       float64
	}{
		{"empty", nil, 0},
		{"single", []float64{2.5}, 2.5},
		{"pythagorean", []float64{3, 4}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeasurementUncertainty(tt.components)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("MeasurementUncertainty(%v) = %g, want %g", tt.components, got, tt.want)
			}
		})
	}
}
