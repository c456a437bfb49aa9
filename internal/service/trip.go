package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/repo"
)

// TripService serves the static trip documents: destination cards, the
// day-by-day itinerary, flights and accommodations.
type TripService struct {
	docs repo.DocumentRepo
}

// NewTripService constructs a TripService backed by the provided DocumentRepo.
func NewTripService(docs repo.DocumentRepo) *TripService {
	return &TripService{docs: docs}
}

// Destinations returns the destination cards in travel order, flagging the
// one the countdown says the travellers are at.
func (s *TripService) Destinations(countdown domain.Countdown) []domain.DestinationStatus {
	dests := domain.Destinations()
	out := make([]domain.DestinationStatus, len(dests))
	for i, d := range dests {
		out[i] = domain.DestinationStatus{
			Destination: d,
			IsCurrent:   countdown.Phase == domain.PhaseInTransit && countdown.ActiveSegment == d.Name,
		}
	}
	return out
}

// Itinerary returns the day plan for one destination.
// Returns domain.ErrNotFound when the itinerary has no entry for it.
func (s *TripService) Itinerary(ctx context.Context, dest domain.DestinationID) (domain.ItineraryDestination, error) {
	doc, err := loadDocument[domain.ItineraryDocument](ctx, s.docs, domain.DocumentItinerary)
	if err != nil {
		return domain.ItineraryDestination{}, fmt.Errorf("service.TripService.Itinerary: %w", err)
	}
	it, ok := doc.Destinations[dest]
	if !ok {
		return domain.ItineraryDestination{}, fmt.Errorf("service.TripService.Itinerary: itinerary for %s: %w", dest, domain.ErrNotFound)
	}
	return it, nil
}

// Flights returns the flights document.
func (s *TripService) Flights(ctx context.Context) (domain.FlightsDocument, error) {
	doc, err := loadDocument[domain.FlightsDocument](ctx, s.docs, domain.DocumentFlights)
	if err != nil {
		return domain.FlightsDocument{}, fmt.Errorf("service.TripService.Flights: %w", err)
	}
	return doc, nil
}

// Accommodations returns the accommodations document.
func (s *TripService) Accommodations(ctx context.Context) (domain.AccommodationsDocument, error) {
	doc, err := loadDocument[domain.AccommodationsDocument](ctx, s.docs, domain.DocumentAccommodations)
	if err != nil {
		return domain.AccommodationsDocument{}, fmt.Errorf("service.TripService.Accommodations: %w", err)
	}
	return doc, nil
}
