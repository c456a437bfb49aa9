package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

func optionIDs(opts []domain.CategoryOption) []string {
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestCategoryOptions_KnownInDisplayOrder(t *testing.T) {
	got := domain.CategoryOptions([]string{"practical", "activities", "restaurants"})

	assert.Equal(t, []string{"all", "restaurants", "activities", "practical"}, optionIDs(got))
	assert.Equal(t, "🍜", got[1].Icon)
}

func TestCategoryOptions_UnknownBucketsLast(t *testing.T) {
	got := domain.CategoryOptions([]string{"shopping", "beaches", "spa", "shopping"})

	assert.Equal(t, []string{"all", "beaches", "shopping", "spa"}, optionIDs(got))
	assert.Equal(t, domain.CategoryOption{ID: "spa", Label: "spa", Icon: "📍"}, got[3])
}

func TestCategoryOptions_NoBuckets(t *testing.T) {
	got := domain.CategoryOptions(nil)

	assert.Equal(t, []string{"all"}, optionIDs(got))
}
