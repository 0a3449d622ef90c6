package descriptor

// Event classifies the temporal structure of a sound source.
type Event int

const (
	// EventSingle is one isolated sound event, such as a single
	// aircraft flyover.
	EventSingle Event = iota

	// EventRepetitive is a series of similar events recurring over the
	// measurement interval.
	EventRepetitive

	// EventContinuous is sound present without interruption, such as
	// steady road traffic.
	EventContinuous

	// EventImpulsive is sound dominated by short-duration impulses.
	EventImpulsive
)

// String returns the name of the event class.
func (e Event) String() string {
	switch e {
	case EventSingle:
		return "single event"
	case EventRepetitive:
		return "repetitive"
	case EventContinuous:
		return "continuous"
	case EventImpulsive:
		return "impulsive"
	default:
		return "Unknown"
	}
}
