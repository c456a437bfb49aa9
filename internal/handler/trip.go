package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/handler/gen"
)

// ListDestinations handles GET /destinations.
// The current destination is taken from the latest countdown snapshot.
func (s *Server) ListDestinations(ctx context.Context, _ gen.ListDestinationsRequestObject) (gen.ListDestinationsResponseObject, error) {
	c, ok := s.countdown.Latest()
	if !ok {
		return gen.ListDestinations503JSONResponse(notReadyBody()), nil
	}

	dests := s.trips.Destinations(c)
	out := make([]gen.Destination, len(dests))
	for i, d := range dests {
		out[i] = destinationToResponse(d)
	}
	return gen.ListDestinations200JSONResponse{
		Countdown:    countdownToResponse(c),
		Destinations: out,
	}, nil
}

// GetItinerary handles GET /destinations/{destinationId}/itinerary.
func (s *Server) GetItinerary(ctx context.Context, req gen.GetItineraryRequestObject) (gen.GetItineraryResponseObject, error) {
	dest, err := domain.ParseDestinationID(string(req.DestinationId))
	if err != nil {
		return gen.GetItinerary404JSONResponse(notFoundBody("destination not found")), nil
	}

	it, err := s.trips.Itinerary(ctx, dest)
	if err != nil {
		// Unavailable wraps the store's own error, which may itself be ErrNotFound.
		if errors.Is(err, domain.ErrUnavailable) {
			return gen.GetItinerary503JSONResponse(unavailableBody(ctx, err)), nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetItinerary404JSONResponse(notFoundBody("no itinerary for this destination")), nil
		}
		return nil, err
	}

	return gen.GetItinerary200JSONResponse(itineraryToResponse(dest, it)), nil
}

// GetFlights handles GET /flights.
func (s *Server) GetFlights(ctx context.Context, _ gen.GetFlightsRequestObject) (gen.GetFlightsResponseObject, error) {
	doc, err := s.trips.Flights(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return gen.GetFlights503JSONResponse(unavailableBody(ctx, err)), nil
		}
		return nil, err
	}
	return gen.GetFlights200JSONResponse(flightsToResponse(doc)), nil
}

// GetAccommodations handles GET /accommodations.
func (s *Server) GetAccommodations(ctx context.Context, _ gen.GetAccommodationsRequestObject) (gen.GetAccommodationsResponseObject, error) {
	doc, err := s.trips.Accommodations(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return gen.GetAccommodations503JSONResponse(unavailableBody(ctx, err)), nil
		}
		return nil, err
	}
	return gen.GetAccommodations200JSONResponse(accommodationsToResponse(doc)), nil
}

// ---- mapping ---------------------------------------------------------------

func destinationToResponse(d domain.DestinationStatus) gen.Destination {
	highlights := d.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return gen.Destination{
		Id:         gen.DestinationId(d.ID),
		Name:       d.Name,
		Label:      d.Label,
		Emoji:      d.Emoji,
		Dates:      d.Dates,
		Nights:     d.Nights,
		Hotel:      d.Hotel,
		Highlights: highlights,
		IsCurrent:  d.IsCurrent,
	}
}

func itineraryToResponse(dest domain.DestinationID, it domain.ItineraryDestination) gen.Itinerary {
	days := make([]gen.ItineraryDay, len(it.Days))
	for i, d := range it.Days {
		items := make([]gen.ItineraryItem, len(d.Items))
		for j, item := range d.Items {
			items[j] = gen.ItineraryItem{
				Type:        item.Type,
				Title:       item.Title,
				Time:        optString(item.Time),
				Location:    optString(item.Location),
				Description: optString(item.Description),
				Note:        optString(item.Note),
			}
		}
		days[i] = gen.ItineraryDay{
			Date:      openapi_types.Date{Time: d.Date.Time},
			DayName:   d.DayName,
			DayNumber: d.DayNumber,
			Items:     items,
		}
	}
	return gen.Itinerary{
		DestinationId: gen.DestinationId(dest),
		Name:          it.Name,
		Dates:         it.Dates,
		Days:          days,
	}
}

func flightsToResponse(doc domain.FlightsDocument) gen.FlightsResponse {
	out := gen.FlightsResponse{
		Flights:            make([]gen.Flight, len(doc.Flights)),
		Transfers:          make([]gen.Transfer, len(doc.Transfers)),
		ImportantReminders: make([]gen.Reminder, len(doc.ImportantReminders)),
	}
	for i, f := range doc.Flights {
		out.Flights[i] = gen.Flight{
			Id:           f.ID,
			Airline:      f.Airline,
			FlightNumber: f.FlightNumber,
			Date:         f.Date,
			Departure:    endpointToResponse(f.Departure),
			Arrival:      endpointToResponse(f.Arrival),
			Class:        optString(f.Class),
			Note:         optString(f.Note),
		}
	}
	for i, t := range doc.Transfers {
		out.Transfers[i] = gen.Transfer{Date: t.Date, From: t.From, To: t.To, Type: t.Type}
	}
	for i, r := range doc.ImportantReminders {
		out.ImportantReminders[i] = gen.Reminder{
			Title:        r.Title,
			Description:  r.Description,
			Url:          optString(r.URL),
			Deadline:     optString(r.Deadline),
			ApplicableTo: optStrings(r.ApplicableTo),
		}
	}
	return out
}

func endpointToResponse(e domain.FlightEndpoint) gen.FlightEndpoint {
	out := gen.FlightEndpoint{Airport: e.Airport, Code: e.Code, Time: e.Time}
	if e.NextDay {
		next := true
		out.NextDay = &next
	}
	return out
}

func accommodationsToResponse(doc domain.AccommodationsDocument) gen.AccommodationsResponse {
	out := gen.AccommodationsResponse{
		Accommodations: make([]gen.Accommodation, len(doc.Accommodations)),
		Contacts:       make([]gen.Contact, len(doc.Contacts)),
	}
	for i, a := range doc.Accommodations {
		out.Accommodations[i] = gen.Accommodation{
			Id:          a.ID,
			Name:        a.Name,
			Destination: a.Destination,
			Location:    optString(a.Location),
			Address:     optString(a.Address),
			CheckIn:     a.CheckIn,
			CheckOut:    a.CheckOut,
			Nights:      a.Nights,
			RoomType:    optString(a.RoomType),
			Board:       optString(a.Board),
			Phone:       optString(a.Phone),
			Website:     optString(a.Website),
			Description: optString(a.Description),
			Distance:    optString(a.Distance),
			Amenities:   optStrings(a.Amenities),
		}
	}
	for i, c := range doc.Contacts {
		out.Contacts[i] = gen.Contact{Name: c.Name, Phone: c.Phone}
	}
	if a := doc.TravelAgency; a != nil {
		out.TravelAgency = &gen.TravelAgency{Name: a.Name, Agent: a.Agent, Phone: a.Phone, Reference: a.Reference}
	}
	return out
}

// optString maps "" to nil so omitempty drops absent fields.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optStrings(s []string) *[]string {
	if len(s) == 0 {
		return nil
	}
	return &s
}
