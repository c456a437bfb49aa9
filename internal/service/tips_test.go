package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/service"
)

// ---- helpers ---------------------------------------------------------------

const sampleTips = `{
  "restaurants": [{"name": "Din Tai Fung", "priority": "must-do", "category": "Taiwanese"}],
  "practical":   [{"title": "SIM card"}]
}`

func decodeTips(t *testing.T, body string) domain.DestinationTips {
	t.Helper()
	var tips domain.DestinationTips
	require.NoError(t, json.Unmarshal([]byte(body), &tips))
	return tips
}

func sel(search, category string, priority domain.Priority) domain.FilterSelection {
	return domain.FilterSelection{SearchText: search, Category: category, Priority: priority}
}

func names(recs []domain.TaggedRecommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.DisplayName())
	}
	return out
}

// ---- FilterTips tests ------------------------------------------------------

func TestFilterTips_AllExcludesPractical(t *testing.T) {
	got := service.FilterTips(decodeTips(t, sampleTips), sel("", domain.CategoryAll, domain.PriorityAll))

	require.Len(t, got, 1)
	assert.Equal(t, "Din Tai Fung", got[0].Name)
	assert.Equal(t, "restaurants", got[0].CategoryName)
}

func TestFilterTips_SearchIsCaseInsensitive(t *testing.T) {
	got := service.FilterTips(decodeTips(t, sampleTips), sel("fung", domain.CategoryAll, domain.PriorityAll))

	assert.Equal(t, []string{"Din Tai Fung"}, names(got))
}

func TestFilterTips_SearchMatchesCategoryField(t *testing.T) {
	got := service.FilterTips(decodeTips(t, sampleTips), sel("TAIWAN", domain.CategoryAll, domain.PriorityAll))

	assert.Equal(t, []string{"Din Tai Fung"}, names(got))
}

func TestFilterTips_PriorityMismatch(t *testing.T) {
	got := service.FilterTips(decodeTips(t, sampleTips), sel("", domain.CategoryAll, domain.PriorityRecommended))

	assert.NotNil(t, got, "an empty match is an empty slice, not nil")
	assert.Empty(t, got)
}

func TestFilterTips_ZeroSelectionMeansAll(t *testing.T) {
	got := service.FilterTips(decodeTips(t, sampleTips), domain.FilterSelection{})

	assert.Equal(t, []string{"Din Tai Fung"}, names(got))
}

func TestFilterTips_SingleBucketIdentity(t *testing.T) {
	tips := decodeTips(t, `{"activities": [
		{"name": "Peak Tram"}, {"name": "Dragon's Back"}, {"name": "Big Buddha"}
	]}`)

	got := service.FilterTips(tips, sel("", "activities", domain.PriorityAll))

	assert.Equal(t, []string{"Peak Tram", "Dragon's Back", "Big Buddha"}, names(got))
	for _, r := range got {
		assert.Empty(t, r.CategoryName, "single-bucket results are not tagged")
	}
}

func TestFilterTips_SingleBucketFilters(t *testing.T) {
	tips := decodeTips(t, `{"activities": [
		{"name": "Peak Tram", "priority": "must-do"},
		{"name": "Dragon's Back", "priority": "recommended"},
		{"name": "Ngong Ping", "description": "cable car to the peak", "priority": "must-do"}
	]}`)

	got := service.FilterTips(tips, sel("peak", "activities", domain.PriorityMustDo))

	assert.Equal(t, []string{"Peak Tram", "Ngong Ping"}, names(got))
}

func TestFilterTips_UnknownBucketIsEmpty(t *testing.T) {
	got := service.FilterTips(decodeTips(t, sampleTips), sel("", "beaches", domain.PriorityAll))

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterTips_PracticalBypassesFacets(t *testing.T) {
	// Explicitly selecting practical ignores search and priority.
	got := service.FilterTips(decodeTips(t, sampleTips), sel("no such text", domain.BucketPractical, domain.PriorityMustDo))

	assert.Equal(t, []string{"SIM card"}, names(got))
	assert.Empty(t, got[0].CategoryName)
}

func TestFilterTips_AllPreservesBucketAndRecordOrder(t *testing.T) {
	tips := decodeTips(t, `{
		"nightlife":   [{"name": "Ozone"}, {"name": "LKF"}],
		"practical":   [{"title": "Octopus card"}],
		"restaurants": [{"name": "Tim Ho Wan"}, {"name": "Din Tai Fung"}]
	}`)

	got := service.FilterTips(tips, sel("", domain.CategoryAll, domain.PriorityAll))

	assert.Equal(t, []string{"Ozone", "LKF", "Tim Ho Wan", "Din Tai Fung"}, names(got))
	assert.Equal(t, "nightlife", got[0].CategoryName)
	assert.Equal(t, "restaurants", got[3].CategoryName)
	for _, r := range got {
		assert.NotEqual(t, domain.BucketPractical, r.CategoryName)
	}
}

// A bucket key repeated in the document is one bucket, so the "all" view
// and the explicit category agree on its records.
func TestFilterTips_DuplicateBucketAllAgreesWithCategory(t *testing.T) {
	tips := decodeTips(t, `{"a":[{"name":"x"}],"a":[{"name":"y"}]}`)

	all := service.FilterTips(tips, sel("", domain.CategoryAll, domain.PriorityAll))
	one := service.FilterTips(tips, sel("", "a", domain.PriorityAll))

	assert.Equal(t, []string{"y"}, names(all))
	assert.Equal(t, []string{"y"}, names(one))
}

func TestFilterTips_MissingFieldsNeverMatchSearchOrPriority(t *testing.T) {
	tips := decodeTips(t, `{"sights": [{"title": "Untitled"}, {}]}`)

	assert.Empty(t, service.FilterTips(tips, sel("untitled", "sights", domain.PriorityAll)))
	assert.Empty(t, service.FilterTips(tips, sel("", "sights", domain.PriorityFun)))
	assert.Len(t, service.FilterTips(tips, sel("", "sights", domain.PriorityAll)), 2)
}

func TestFilterTips_DoesNotMutateInput(t *testing.T) {
	tips := decodeTips(t, sampleTips)
	before, err := json.Marshal(tips)
	require.NoError(t, err)

	got := service.FilterTips(tips, sel("", domain.CategoryAll, domain.PriorityAll))
	got[0].Name = "changed"

	after, err := json.Marshal(tips)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestFilterTips_Idempotent(t *testing.T) {
	tips := decodeTips(t, sampleTips)
	s := sel("din", domain.CategoryAll, domain.PriorityMustDo)

	assert.Equal(t, service.FilterTips(tips, s), service.FilterTips(tips, s))
}

// ---- TipsService tests -----------------------------------------------------

func TestTipsService_Search_Embedded(t *testing.T) {
	svc := service.NewTipsService(embeddedDocs())

	got, err := svc.Search(context.Background(), domain.DestinationHongKong, domain.FilterSelection{SearchText: "fung"})

	require.NoError(t, err)
	assert.Equal(t, domain.DestinationHongKong, got.Destination)
	assert.Equal(t, domain.CategoryAll, got.Selection.Category)
	assert.Equal(t, domain.PriorityAll, got.Selection.Priority)
	require.Equal(t, 1, got.Total)
	assert.Equal(t, "hk-din-tai-fung", got.Records[0].Key)
	assert.False(t, got.Practical)

	ids := make([]string, 0, len(got.Categories))
	for _, c := range got.Categories {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"all", "restaurants", "nightlife", "activities", "practical"}, ids)
}

func TestTipsService_Search_PracticalGetsStableKeys(t *testing.T) {
	svc := service.NewTipsService(embeddedDocs())
	s := domain.FilterSelection{Category: domain.BucketPractical}

	first, err := svc.Search(context.Background(), domain.DestinationHongKong, s)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), domain.DestinationHongKong, s)
	require.NoError(t, err)

	require.Equal(t, 2, first.Total)
	assert.True(t, first.Practical)
	assert.NotEmpty(t, first.Records[0].Key)
	assert.NotEqual(t, first.Records[0].Key, first.Records[1].Key)
	assert.Equal(t, first.Records[0].Key, second.Records[0].Key)
}

func TestTipsService_Search_DestinationWithoutTips(t *testing.T) {
	svc := service.NewTipsService(docsOf(map[domain.DocumentKind]string{
		domain.DocumentTips: `{"hong-kong": ` + sampleTips + `}`,
	}))

	got, err := svc.Search(context.Background(), domain.DestinationDubai, domain.DefaultSelection())

	require.NoError(t, err)
	assert.NotNil(t, got.Records)
	assert.Zero(t, got.Total)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, domain.CategoryAll, got.Categories[0].ID)
}

func TestTipsService_Search_UnknownPriorityInDocument(t *testing.T) {
	svc := service.NewTipsService(docsOf(map[domain.DocumentKind]string{
		domain.DocumentTips: `{"dubai": {"sights": [{"name": "Burj", "priority": "urgent"}]}}`,
	}))

	_, err := svc.Search(context.Background(), domain.DestinationDubai, domain.DefaultSelection())

	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTipsService_Search_NotLoaded(t *testing.T) {
	svc := service.NewTipsService(docsOf(nil))

	_, err := svc.Search(context.Background(), domain.DestinationDubai, domain.DefaultSelection())

	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestTipsService_Search_EmbeddedDocumentDecodes(t *testing.T) {
	// Every destination in the shipped document decodes and filters.
	svc := service.NewTipsService(embeddedDocs())

	for _, d := range domain.Destinations() {
		got, err := svc.Search(context.Background(), d.ID, domain.DefaultSelection())
		require.NoError(t, err, d.ID)
		assert.NotZero(t, got.Total, d.ID)
		for _, r := range got.Records {
			assert.NotEqual(t, domain.BucketPractical, r.CategoryName)
			assert.NotEmpty(t, r.Key)
		}
	}
}
