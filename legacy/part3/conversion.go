package part3

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// defaultTotalPeriod is the reference period in hours that period
// contributions are averaged over.
const defaultTotalPeriod = 24.0

// PeriodLevel is one time period's contribution to a whole-period
// average: an equivalent level in dB held for a duration in hours.
type PeriodLevel struct {
	Level    float64 // dB
	Duration float64 // hours
}

// ConversionConfig defines the reference period for TimeWeightedAverage.
type ConversionConfig struct {
	TotalPeriod float64 // hours
}

// ConversionOption mutates a ConversionConfig.
type ConversionOption func(*ConversionConfig)

// DefaultConversionConfig returns the standard 24-hour reference period.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{TotalPeriod: defaultTotalPeriod}
}

// WithTotalPeriod sets the reference period in hours.
func WithTotalPeriod(hours float64) ConversionOption {
	return func(cfg *ConversionConfig) {
		if hours > 0 {
			cfg.TotalPeriod = hours
		}
	}
}

// ApplyConversionOptions applies zero or more options to the default
// config.
func ApplyConversionOptions(opts ...ConversionOption) ConversionConfig {
	cfg := DefaultConversionConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// TimeWeightedAverage converts per-period levels into the equivalent
// continuous level over the reference period (24 h by default):
//
//	Leq,total = 10*log10( Σ ti*10^(Li/10) / Ttotal )
//
// Periods need not cover the whole reference period; uncovered time
// counts as silence. No validation is applied: an empty period list
// yields -Inf.
func TimeWeightedAverage(periods []PeriodLevel, opts ...ConversionOption) float64 {
	cfg := ApplyConversionOptions(opts...)

	durations := make([]float64, len(periods))
	powers := make([]float64, len(periods))

	for i, p := range periods {
		durations[i] = p.Duration
		powers[i] = math.Pow(10, p.Level/10)
	}

	return 10 * math.Log10(vecmath.DotProduct(durations, powers)/cfg.TotalPeriod)
}
