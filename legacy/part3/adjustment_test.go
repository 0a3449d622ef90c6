package part3

import "testing"

func TestTonalAdjustment(t *testing.T) {
	tests := []struct {
		name   string
		deltaL float64
		want   float64
	}{
		{"dominant", 15, 6},
		{"above_table", 20, 6},
		{"upper_row_top", 14, 5},
		{"upper_row", 12, 5},
		{"upper_row_bottom", 10, 5},
		{"lower_row_top", 9, 2},
		{"lower_row", 7, 2},
		{"lower_row_bottom", 5, 2},
		{"below_table", 4.9, 0},
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"fractional_gap", 14.5, 0}, // whole-decibel rows; 14.5 matches none
		{"fractional_low_gap", 5.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TonalAdjustment(tt.deltaL)
			if got != tt.want {
				t.Errorf("TonalAdjustment(%v) = %g, want %g", tt.deltaL, got, tt.want)
			}
		})
	}
}

func TestTonalAdjustmentContinuous(t *testing.T) {
	tests := []struct {
		name   string
		deltaL float64
		want   float64
	}{
		{"dominant", 15, 6},
		{"fractional_upper", 14.5, 5},
		{"upper", 10, 5},
		{"fractional_lower", 5.5, 2},
		{"lower", 5, 2},
		{"below", 4.9, 0},
		{"negative", -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TonalAdjustmentContinuous(tt.deltaL)
			if got != tt.want {
				t.Errorf("TonalAdjustmentContinuous(%v) = %g, want %g", tt.deltaL, got, tt.want)
			}
		})
	}
}

func TestTonalAdjustmentsAgreeOnWholeDecibels(t *testing.T) {
	for deltaL := -5.0; deltaL <= 20; deltaL++ {
		table := TonalAdjustment(deltaL)
		continuous := TonalAdjustmentContinuous(deltaL)
		if table != continuous {
			t.Errorf("ΔL=%v: table %g, continuous %g", deltaL, table, continuous)
		}
	}
}

func TestImpulsiveAdjustment(t *testing.T) {
	tests := []struct {
		name           string
		lCPeak         float64
		highlyAnnoying bool
		want           float64
	}{
		{"quiet", 90, false, 0},
		{"just_below_threshold", 129.9, false, 0},
		{"at_threshold", 130, false, 6},
		{"above_threshold", 135, false, 6},
		{"annoying_below_threshold", 90, true, 6},
		{"annoying_above_threshold", 140, true, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImpulsiveAdjustment(tt.lCPeak, tt.highlyAnnoying)
			if got != tt.want {
				t.Errorf("ImpulsiveAdjustment(%v, %v) = %g, want %g",
					tt.lCPeak, tt.highlyAnnoying, got, tt.want)
			}
		})
	}
}
