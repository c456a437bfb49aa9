package domain

import (
	"fmt"
	"time"
)

// Phase says where "now" sits relative to the trip.
type Phase string

const (
	PhasePreDeparture Phase = "pre-departure"
	PhaseInTransit    Phase = "in-transit"
)

// Remaining is the truncated time left until departure.
type Remaining struct {
	Days  int
	Hours int
}

// Countdown is the result of resolving one instant against the Schedule.
// Remaining is set only in PhasePreDeparture; ActiveSegment and ActiveIndex
// are meaningful only in PhaseInTransit.
type Countdown struct {
	Phase     Phase
	Remaining *Remaining

	// ActiveSegment is a segment name or HomeSegment.
	ActiveSegment string
	// ActiveIndex is the position of ActiveSegment in the schedule, or
	// len(segments) for HomeSegment. It is -1 before departure.
	ActiveIndex int

	ResolvedAt time.Time
}

// Message renders the countdown the way the dashboard header shows it.
func (c Countdown) Message() string {
	switch c.Phase {
	case PhasePreDeparture:
		if c.Remaining == nil {
			return ""
		}
		return fmt.Sprintf("%d days and %d hours", c.Remaining.Days, c.Remaining.Hours)
	case PhaseInTransit:
		return "We're on our way! Current location: " + c.ActiveSegment
	default:
		return ""
	}
}
