// Package domain contains the core data types for the trip dashboard.
// Apart from google/uuid it has no external dependencies and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"fmt"
	"time"
)

// DestinationID identifies one of the fixed trip destinations.
// It doubles as the key of the itinerary and tips documents.
type DestinationID string

const (
	DestinationHongKong  DestinationID = "hong-kong"
	DestinationSingapore DestinationID = "singapore"
	DestinationLangkawi  DestinationID = "langkawi"
	DestinationDubai     DestinationID = "dubai"
)

// HomeSegment is the active segment once "now" is past every boundary.
const HomeSegment = "home"

// Destination is the static card shown on the dashboard for one stop of the trip.
type Destination struct {
	ID         DestinationID
	Name       string // also the segment name used by the countdown
	Label      string // tab label, name plus flag
	Emoji      string
	Dates      string
	Nights     int
	Hotel      string
	Highlights []string
}

// DestinationStatus is a Destination annotated with whether the travellers
// are there right now.
type DestinationStatus struct {
	Destination
	IsCurrent bool
}

var destinations = []Destination{
	{
		ID: DestinationHongKong, Name: "Hong Kong", Label: "Hong Kong 🇭🇰", Emoji: "🇭🇰",
		Dates: "27-30 dec", Nights: 3, Hotel: "The Hari Hong Kong",
		Highlights: []string{"Victoria Peak", "Din Tai Fung", "Dragons Back", "LKF Nightlife"},
	},
	{
		ID: DestinationSingapore, Name: "Singapore", Label: "Singapore 🇸🇬", Emoji: "🇸🇬",
		Dates: "30 dec - 3 jan", Nights: 4, Hotel: "Artyzen Singapore",
		Highlights: []string{"New Year's Eve!", "Gardens by the Bay", "Marina Bay Sands", "Bike Tour"},
	},
	{
		ID: DestinationLangkawi, Name: "Langkawi", Label: "Langkawi 🇲🇾", Emoji: "🇲🇾",
		Dates: "3-7 jan", Nights: 4, Hotel: "Pelangi Beach Resort",
		Highlights: []string{"Cenang Beach", "Cable Car", "Island Hopping", "Resort Relaxing"},
	},
	{
		ID: DestinationDubai, Name: "Dubai", Label: "Dubai 🇦🇪", Emoji: "🇦🇪",
		Dates: "7-10 jan", Nights: 3, Hotel: "Bab Al Shams Desert Resort",
		Highlights: []string{"Desert Experience", "Burj Khalifa", "Spa & Wellness", "Desert Dinner"},
	},
}

// Destinations returns the trip destinations in travel order.
// The returned slice is a copy; callers may modify it freely.
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// ParseDestinationID validates s against the fixed destination set.
// Returns ErrNotFound for anything else.
func ParseDestinationID(s string) (DestinationID, error) {
	for _, d := range destinations {
		if string(d.ID) == s {
			return d.ID, nil
		}
	}
	return "", fmt.Errorf("destination %q: %w", s, ErrNotFound)
}

// Segment is one leg of the journey. End is exclusive: an instant equal to
// End already belongs to the next segment.
type Segment struct {
	Name string
	End  time.Time
}

// Schedule holds the fixed trip facts the countdown is resolved against.
type Schedule struct {
	Departure time.Time
	Segments  []Segment
}

// NewSchedule builds a Schedule after checking that segment boundaries are
// strictly increasing. The segments slice is copied.
func NewSchedule(departure time.Time, segments []Segment) (Schedule, error) {
	for i := 1; i < len(segments); i++ {
		if !segments[i].End.After(segments[i-1].End) {
			return Schedule{}, fmt.Errorf("%w: segment %q must end after %q",
				ErrValidation, segments[i].Name, segments[i-1].Name)
		}
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	return Schedule{Departure: departure, Segments: segs}, nil
}

// DefaultSchedule returns the trip facts, interpreted in loc (the viewer's
// local clock). Departure is the evening of 26 December 2025; each segment
// ends at local midnight of its checkout day.
func DefaultSchedule(loc *time.Location) Schedule {
	if loc == nil {
		loc = time.Local
	}
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	s, err := NewSchedule(time.Date(2025, time.December, 26, 22, 0, 0, 0, loc), []Segment{
		{Name: "Hong Kong", End: day(2025, time.December, 30)},
		{Name: "Singapore", End: day(2026, time.January, 3)},
		{Name: "Langkawi", End: day(2026, time.January, 7)},
		{Name: "Dubai", End: day(2026, time.January, 10)},
	})
	if err != nil {
		panic("domain: default schedule is out of order: " + err.Error())
	}
	return s
}
