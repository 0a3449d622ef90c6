package part1

import "testing"

func TestTonalAdjustment(t *testing.T) {
	tests := []struct {
		name      string
		audible   bool
		prominent bool
		want      float64
	}{
		{"inaudible", false, false, 0},
		{"inaudible_prominent_ignored", false, true, 0},
		{"audible", true, false, 3},
		{"prominent", true, true, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TonalAdjustment(tt.audible, tt.prominent)
			if got != tt.want {
				t.Errorf("TonalAdjustment(%v, %v) = %g, want %g",
					tt.audible, tt.prominent, got, tt.want)
			}
		})
	}
}

func TestImpulsiveAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		audible  bool
		distinct bool
		want     float64
	}{
		{"inaudible", false, false, 0},
		{"inaudible_distinct_ignored", false, true, 0},
		{"audible", true, false, 3},
		{"distinct", true, true, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImpulsiveAdjustment(tt.audible, tt.distinct)
			if got != tt.want {
				t.Errorf("ImpulsiveAdjustment(%v, %v) = %g, want %g",
					tt.audible, tt.distinct, got, tt.want)
			}
		})
	}
}
