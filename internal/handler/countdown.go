package handler

import (
	"context"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/handler/gen"
)

// GetCountdown handles GET /countdown.
func (s *Server) GetCountdown(ctx context.Context, _ gen.GetCountdownRequestObject) (gen.GetCountdownResponseObject, error) {
	c, ok := s.countdown.Latest()
	if !ok {
		return gen.GetCountdown503JSONResponse(notReadyBody()), nil
	}
	return gen.GetCountdown200JSONResponse(countdownToResponse(c)), nil
}

func notReadyBody() gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "unavailable", Message: "countdown not resolved yet"}}
}

// countdownToResponse maps a domain.Countdown to the generated type.
// Remaining and ActiveSegment are only present in their own phase.
func countdownToResponse(c domain.Countdown) gen.Countdown {
	out := gen.Countdown{
		Phase:       gen.CountdownPhase(c.Phase),
		ActiveIndex: c.ActiveIndex,
		Message:     c.Message(),
		ResolvedAt:  c.ResolvedAt,
	}
	if c.Remaining != nil {
		out.Remaining = &gen.Remaining{Days: c.Remaining.Days, Hours: c.Remaining.Hours}
	}
	if c.Phase == domain.PhaseInTransit {
		seg := c.ActiveSegment
		out.ActiveSegment = &seg
	}
	return out
}
