package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

func TestParsePriorityFilter(t *testing.T) {
	cases := []struct {
		in      string
		want    domain.Priority
		wantErr bool
	}{
		{in: "", want: domain.PriorityAll},
		{in: "all", want: domain.PriorityAll},
		{in: "must-do", want: domain.PriorityMustDo},
		{in: "nye-recommended", want: domain.PriorityNYERecommended},
		{in: "Must-Do", wantErr: true},
		{in: "urgent", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParsePriorityFilter(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// "all" is a filter sentinel, never a record priority.
func TestParsePriority_RejectsAll(t *testing.T) {
	_, err := domain.ParsePriority("all")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPriority_Labels(t *testing.T) {
	for _, p := range domain.Priorities() {
		assert.NotEqual(t, string(p), p.Label(), "%s has no label", p)
	}
	assert.Equal(t, "Must Do!", domain.PriorityMustDo.Label())
	assert.Equal(t, "NYE Pick!", domain.PriorityNYERecommended.Label())
}

func TestPriority_FilterOptions(t *testing.T) {
	var got []domain.Priority
	for _, p := range domain.Priorities() {
		if p.IsFilterOption() {
			got = append(got, p)
		}
	}

	assert.Equal(t, []domain.Priority{
		domain.PriorityMustDo, domain.PriorityRecommended, domain.PriorityOptional, domain.PriorityNYERecommended,
	}, got)
}

func TestPriority_UnmarshalJSON(t *testing.T) {
	var rec domain.Recommendation
	require.NoError(t, json.Unmarshal([]byte(`{"priority":"cultural"}`), &rec))
	assert.Equal(t, domain.PriorityCultural, rec.Priority)

	rec = domain.Recommendation{}
	require.NoError(t, json.Unmarshal([]byte(`{"priority":""}`), &rec))
	assert.Empty(t, rec.Priority)

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"priority":7}`), &rec), domain.ErrValidation)
}

func TestPriorities_ReturnsCopy(t *testing.T) {
	p := domain.Priorities()
	p[0] = "changed"

	assert.Equal(t, domain.PriorityMustDo, domain.Priorities()[0])
}
