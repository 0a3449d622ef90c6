package descriptor

// Period identifies a reference time interval of the day as used by
// day-evening-night rating.
type Period int

const (
	// PeriodDay covers 07:00 to 19:00.
	PeriodDay Period = iota

	// PeriodEvening covers 19:00 to 23:00.
	PeriodEvening

	// PeriodNight covers 23:00 to 07:00.
	PeriodNight
)

// Clock hours belonging to each period. An hour h covers the interval
// [h:00, h+1:00).
var (
	dayHours     = [...]int{7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	eveningHours = [...]int{19, 20, 21, 22}
	nightHours   = [...]int{23, 0, 1, 2, 3, 4, 5, 6}
)

// String returns the lower-case name of the period.
func (p Period) String() string {
	switch p {
	case PeriodDay:
		return "day"
	case PeriodEvening:
		return "evening"
	case PeriodNight:
		return "night"
	default:
		return "Unknown"
	}
}

// Hours returns the clock hours belonging to the period, in period
// order. The slice is a fresh copy on every call.
func (p Period) Hours() []int {
	switch p {
	case PeriodDay:
		return append([]int(nil), dayHours[:]...)
	case PeriodEvening:
		return append([]int(nil), eveningHours[:]...)
	case PeriodNight:
		return append([]int(nil), nightHours[:]...)
	default:
		return nil
	}
}

// Penalty returns the day-evening-night rating penalty of the period
// in dB.
func (p Period) Penalty() float64 {
	switch p {
	case PeriodEvening:
		return 5
	case PeriodNight:
		return 10
	default:
		return 0
	}
}

// PeriodOfHour returns the period containing the clock hour h, where h
// counts from 0 to 23. The second return value is false when h is
// outside that range.
func PeriodOfHour(h int) (Period, bool) {
	if h < 0 || h > 23 {
		return PeriodDay, false
	}

	switch {
	case h >= 7 && h <= 18:
		return PeriodDay, true
	case h >= 19 && h <= 22:
		return PeriodEvening, true
	}

	return PeriodNight, true
}
