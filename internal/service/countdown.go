// Package service contains the business logic for the trip dashboard.
// The two pure cores live here (ResolveCountdown and FilterTips) together
// with the services that feed them documents and the current time.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"time"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

const day = 24 * time.Hour

// ResolveCountdown maps now onto the trip timeline.
//
// Before departure it reports the truncated days and hours left. From the
// departure instant on (inclusive) it reports the first segment whose end is
// strictly after now, or domain.HomeSegment once every segment has ended.
// segments must be ordered by End; the function keeps no state.
func ResolveCountdown(now, departure time.Time, segments []domain.Segment) domain.Countdown {
	if diff := departure.Sub(now); diff > 0 {
		return domain.Countdown{
			Phase: domain.PhasePreDeparture,
			Remaining: &domain.Remaining{
				Days:  int(diff / day),
				Hours: int((diff % day) / time.Hour),
			},
			ActiveIndex: -1,
			ResolvedAt:  now,
		}
	}

	for i, seg := range segments {
		if seg.End.After(now) {
			return inTransit(now, seg.Name, i)
		}
	}
	return inTransit(now, domain.HomeSegment, len(segments))
}

func inTransit(now time.Time, segment string, index int) domain.Countdown {
	return domain.Countdown{
		Phase:         domain.PhaseInTransit,
		ActiveSegment: segment,
		ActiveIndex:   index,
		ResolvedAt:    now,
	}
}

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// CountdownService resolves the countdown for the configured schedule
// against its clock.
type CountdownService struct {
	schedule domain.Schedule
	now      Clock
}

// NewCountdownService constructs a CountdownService. A nil clock means time.Now.
func NewCountdownService(schedule domain.Schedule, now Clock) *CountdownService {
	if now == nil {
		now = time.Now
	}
	return &CountdownService{schedule: schedule, now: now}
}

// Current resolves the countdown for the clock's current time.
func (s *CountdownService) Current() domain.Countdown {
	return ResolveCountdown(s.now(), s.schedule.Departure, s.schedule.Segments)
}
