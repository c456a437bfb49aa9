package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

func TestParseDestinationID(t *testing.T) {
	for _, d := range domain.Destinations() {
		got, err := domain.ParseDestinationID(string(d.ID))
		require.NoError(t, err)
		assert.Equal(t, d.ID, got)
	}

	_, err := domain.ParseDestinationID("paris")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinations_TravelOrder(t *testing.T) {
	var names []string
	for _, d := range domain.Destinations() {
		names = append(names, d.Name)
	}

	assert.Equal(t, []string{"Hong Kong", "Singapore", "Langkawi", "Dubai"}, names)
}

func TestNewSchedule_RejectsOutOfOrderSegments(t *testing.T) {
	end := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := domain.NewSchedule(end.Add(-48*time.Hour), []domain.Segment{
		{Name: "A", End: end},
		{Name: "B", End: end},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewSchedule_CopiesSegments(t *testing.T) {
	end := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	segs := []domain.Segment{{Name: "A", End: end}}

	s, err := domain.NewSchedule(end.Add(-time.Hour), segs)
	require.NoError(t, err)
	segs[0].Name = "changed"

	assert.Equal(t, "A", s.Segments[0].Name)
}

func TestDate_JSON(t *testing.T) {
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-12-27"`), &d))
	assert.Equal(t, time.Date(2025, time.December, 27, 0, 0, 0, 0, time.UTC), d.Time)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-27"`, string(out))

	assert.ErrorIs(t, json.Unmarshal([]byte(`"27/12/2025"`), &d), domain.ErrValidation)
}

func TestCountdown_Message(t *testing.T) {
	pre := domain.Countdown{Phase: domain.PhasePreDeparture, Remaining: &domain.Remaining{Days: 1, Hours: 1}}
	assert.Equal(t, "1 days and 1 hours", pre.Message())

	transit := domain.Countdown{Phase: domain.PhaseInTransit, ActiveSegment: "Singapore", ActiveIndex: 1}
	assert.Equal(t, "We're on our way! Current location: Singapore", transit.Message())
}
