package part2

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBackgroundNoiseCorrection(t *testing.T) {
	tests := []struct {
		name       string
		total      float64
		background float64
		want       float64
	}{
		{"six_dB", 66, 60, 1.2562757749181508},
		{"seven_dB", 67, 60, 0.9665289532620471},
		{"eight_dB", 68, 60, 0.7494036743261491},
		{"fractional", 70, 60.5, 0.5168576206012724},
		{"ten_dB_boundary", 70, 60, 0},
		{"well_separated", 80, 60, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BackgroundNoiseCorrection(tt.total, tt.background)
			if err != nil {
				t.Fatalf("BackgroundNoiseCorrection error: %v", err)
			}
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestBackgroundNoiseCorrectionUncertain(t *testing.T) {
	tests := []struct {
		name       string
		total      float64
		background float64
	}{
		{"three_dB_boundary", 63, 60},
		{"below_boundary", 62, 60},
		{"background_above_total", 60, 66},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BackgroundNoiseCorrection(tt.total, tt.background)
			if !errors.Is(err, ErrUncertainMeasurement) {
				t.Errorf("err = %v, want ErrUncertainMeasurement", err)
			}
		})
	}
}

func TestBackgroundNoiseCorrectionMonotone(t *testing.T) {
	// The correction shrinks as the separation grows.
	prev := math.Inf(1)
	for delta := 3.5; delta < 10; delta += 0.5 {
		got, err := BackgroundNoiseCorrection(60+delta, 60)
		if err != nil {
			t.Fatalf("delta %v: BackgroundNoiseCorrection error: %v", delta, err)
		}
		if got >= prev {
			t.Errorf("delta %v: correction %g did not shrink (prev %g)", delta, got, prev)
		}
		prev = got
	}
}

func TestAtmosphericAbsorptionCorrection(t *testing.T) {
	tests := []struct {
		name        string
		coefficient float64
		distance    float64
		want        float64
	}{
		{"typical", 0.005, 200, 1.0},
		{"zero_distance", 0.005, 0, 0},
		{"zero_coefficient", 0, 500, 0},
		{"long_path", 0.0021, 1000, 2.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AtmosphericAbsorptionCorrection(tt.coefficient, tt.distance)
			if !almostEqual(got, tt.want, tolerance) {
				t.Errorf("got %g, want %g", got, tt.want)
			}
		})
	}
}
