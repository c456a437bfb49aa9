// Package handler implements the HTTP handlers for the Trip Dashboard API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, tips.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

// CountdownProvider hands out the latest countdown snapshot.
// ok is false until the first resolution.
type CountdownProvider interface {
	Latest() (countdown domain.Countdown, ok bool)
}

// TipsSearcher runs the facet filter over one destination's tips.
type TipsSearcher interface {
	Search(ctx context.Context, dest domain.DestinationID, sel domain.FilterSelection) (domain.TipsResult, error)
}

// TripServicer defines the trip document operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the document store.
type TripServicer interface {
	Destinations(countdown domain.Countdown) []domain.DestinationStatus
	Itinerary(ctx context.Context, dest domain.DestinationID) (domain.ItineraryDestination, error)
	Flights(ctx context.Context) (domain.FlightsDocument, error)
	Accommodations(ctx context.Context) (domain.AccommodationsDocument, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandler(server, nil).
type Server struct {
	countdown CountdownProvider
	trips     TripServicer
	tips      TipsSearcher
}

// NewServer constructs the Server with all its dependencies.
func NewServer(countdown CountdownProvider, trips TripServicer, tips TipsSearcher) *Server {
	return &Server{countdown: countdown, trips: trips, tips: tips}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}
