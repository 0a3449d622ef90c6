package part1

import "math"

// Default day-evening-night split per ISO 1996-1:2016 (the 24-hour split
// also used by Directive 2002/49/EC).
const (
	defaultDayDuration     = 12.0 // hours
	defaultEveningDuration = 4.0  // hours
	defaultNightDuration   = 8.0  // hours
	defaultEveningPenalty  = 5.0  // dB
	defaultNightPenalty    = 10.0 // dB
)

// DenConfig defines the period durations and rating penalties used by
// DayEveningNightLevel.
type DenConfig struct {
	DayDuration     float64 // hours
	EveningDuration float64 // hours
	NightDuration   float64 // hours
	EveningPenalty  float64 // dB
	NightPenalty    float64 // dB
}

// DenOption mutates a DenConfig.
type DenOption func(*DenConfig)

// DefaultDenConfig returns the standard 12/4/8 hour split with 5 dB
// evening and 10 dB night penalties.
func DefaultDenConfig() DenConfig {
	return DenConfig{
		DayDuration:     defaultDayDuration,
		EveningDuration: defaultEveningDuration,
		NightDuration:   defaultNightDuration,
		EveningPenalty:  defaultEveningPenalty,
		NightPenalty:    defaultNightPenalty,
	}
}

// WithDayDuration sets the day period duration in hours.
func WithDayDuration(hours float64) DenOption {
	return func(cfg *DenConfig) {
		if hours > 0 {
			cfg.DayDuration = hours
		}
	}
}

// WithEveningDuration sets the evening period duration in hours.
func WithEveningDuration(hours float64) DenOption {
	return func(cfg *DenConfig) {
		if hours > 0 {
			cfg.EveningDuration = hours
		}
	}
}

// WithNightDuration sets the night period duration in hours.
func WithNightDuration(hours float64) DenOption {
	return func(cfg *DenConfig) {
		if hours > 0 {
			cfg.NightDuration = hours
		}
	}
}

// WithEveningPenalty sets the evening penalty in dB. Zero and negative
// penalties are allowed.
func WithEveningPenalty(dB float64) DenOption {
	return func(cfg *DenConfig) {
		cfg.EveningPenalty = dB
	}
}

// WithNightPenalty sets the night penalty in dB. Zero and negative
// penalties are allowed.
func WithNightPenalty(dB float64) DenOption {
	return func(cfg *DenConfig) {
		cfg.NightPenalty = dB
	}
}

// ApplyDenOptions applies zero or more options to the default config.
func ApplyDenOptions(opts ...DenOption) DenConfig {
	cfg := DefaultDenConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// DayEveningNightLevel returns Lden, the energetic average of the day,
// evening, and night period levels with the evening and night penalties
// applied before averaging:
//
//	Lden = 10*log10( (td*10^(Ld/10) + te*10^((Le+Pe)/10) + tn*10^((Ln+Pn)/10)) / (td+te+tn) )
//
// The normalizing denominator is the sum of the configured durations, not
// a fixed 24 hours, so a shortened split still averages correctly.
func DayEveningNightLevel(day, evening, night float64, opts ...DenOption) float64 {
	cfg := ApplyDenOptions(opts...)

	sum := cfg.DayDuration*math.Pow(10, day/10) +
		cfg.EveningDuration*math.Pow(10, (evening+cfg.EveningPenalty)/10) +
		cfg.NightDuration*math.Pow(10, (night+cfg.NightPenalty)/10)

	return 10 * math.Log10(sum/(cfg.DayDuration+cfg.EveningDuration+cfg.NightDuration))
}
