package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentKind names one of the trip documents the dashboard is built from.
type DocumentKind string

const (
	DocumentItinerary      DocumentKind = "itinerary"
	DocumentTips           DocumentKind = "tips"
	DocumentFlights        DocumentKind = "flights"
	DocumentAccommodations DocumentKind = "accommodations"
)

// DocumentKinds returns every document kind.
func DocumentKinds() []DocumentKind {
	return []DocumentKind{DocumentItinerary, DocumentTips, DocumentFlights, DocumentAccommodations}
}

// Date is a calendar date encoded as "2006-01-02" in JSON.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// UnmarshalJSON parses a "2006-01-02" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrValidation)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("%w: malformed date %q", ErrValidation, s)
	}
	d.Time = t
	return nil
}

// MarshalJSON formats the date as "2006-01-02".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// ItineraryItem is one entry of a day plan (a flight, a dinner reservation…).
type ItineraryItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Note        string `json:"note,omitempty"`
}

// ItineraryDay is the plan for a single calendar day.
type ItineraryDay struct {
	Date      Date            `json:"date"`
	DayName   string          `json:"dayName"`
	DayNumber int             `json:"dayNumber"`
	Items     []ItineraryItem `json:"items"`
}

// ItineraryDestination is the day-by-day plan for one destination.
type ItineraryDestination struct {
	Name  string         `json:"name"`
	Dates string         `json:"dates"`
	Days  []ItineraryDay `json:"days"`
}

// ItineraryDocument is the decoded itinerary document.
type ItineraryDocument struct {
	Destinations map[DestinationID]ItineraryDestination `json:"destinations"`
}

// FlightEndpoint is the departure or arrival side of a flight leg.
type FlightEndpoint struct {
	Airport string `json:"airport"`
	Code    string `json:"code"`
	Time    string `json:"time"`
	NextDay bool   `json:"nextDay,omitempty"`
}

// Flight is one flight leg.
type Flight struct {
	ID           string         `json:"id"`
	Airline      string         `json:"airline"`
	FlightNumber string         `json:"flightNumber"`
	Date         string         `json:"date"`
	Departure    FlightEndpoint `json:"departure"`
	Arrival      FlightEndpoint `json:"arrival"`
	Class        string         `json:"class,omitempty"`
	Note         string         `json:"note,omitempty"`
}

// Transfer is a ground transfer between airport and hotel.
type Transfer struct {
	Date string `json:"date"`
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// Reminder is an action the travellers must not forget (arrival cards, visas).
type Reminder struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	URL          string   `json:"url,omitempty"`
	Deadline     string   `json:"deadline,omitempty"`
	ApplicableTo []string `json:"applicableTo,omitempty"`
}

// FlightsDocument is the decoded flights document.
type FlightsDocument struct {
	Flights            []Flight   `json:"flights"`
	Transfers          []Transfer `json:"transfers"`
	ImportantReminders []Reminder `json:"importantReminders"`
}

// Accommodation is one hotel stay.
type Accommodation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	Location    string   `json:"location,omitempty"`
	Address     string   `json:"address,omitempty"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	Nights      int      `json:"nights"`
	RoomType    string   `json:"roomType,omitempty"`
	Board       string   `json:"board,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Description string   `json:"description,omitempty"`
	Distance    string   `json:"distance,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

// Contact is an emergency or travel contact.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TravelAgency is the booking agency details.
type TravelAgency struct {
	Name      string `json:"name"`
	Agent     string `json:"agent"`
	Phone     string `json:"phone"`
	Reference string `json:"reference"`
}

// AccommodationsDocument is the decoded accommodations document.
type AccommodationsDocument struct {
	Accommodations []Accommodation `json:"accommodations"`
	Contacts       []Contact       `json:"contacts"`
	TravelAgency   *TravelAgency   `json:"travelAgency,omitempty"`
}
