package handler_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

// ---- GET /destinations/{id}/tips?format=csv --------------------------------

func TestListTips_CSV_ContentType(t *testing.T) {
	rec := serve(newTipsHTTPHandler(echoSearcher(nil, nil)), "/destinations/hong-kong/tips?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
}

func TestListTips_CSV_EmptyResult_HasHeaderRow(t *testing.T) {
	svc := &mockTipsSearcher{
		search: func(_ context.Context, dest domain.DestinationID, sel domain.FilterSelection) (domain.TipsResult, error) {
			return domain.TipsResult{Destination: dest, Selection: sel, Records: []domain.TaggedRecommendation{}}, nil
		},
	}

	rec := serve(newTipsHTTPHandler(svc), "/destinations/dubai/tips?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "key,destination,bucket,"), "CSV should start with header row, got: %q", body)
}

func TestListTips_CSV_OneRow(t *testing.T) {
	rec := serve(newTipsHTTPHandler(echoSearcher(nil, nil)), "/destinations/hong-kong/tips?format=csv&q=din")

	require.Equal(t, http.StatusOK, rec.Code)
	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "header + one data row")

	header, row := rows[0], rows[1]
	col := func(name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("no column %q", name)
		return ""
	}
	assert.Equal(t, "hk-din-tai-fung", col("key"))
	assert.Equal(t, "hong-kong", col("destination"))
	assert.Equal(t, "restaurants", col("bucket"))
	assert.Equal(t, "Din Tai Fung", col("name"))
	assert.Equal(t, "Must Do!", col("priority_label"))
	assert.Equal(t, "Xiao long bao|Fried rice", col("dishes"))
}

func TestListTips_CSV_SingleBucketUsesSelectedCategory(t *testing.T) {
	svc := &mockTipsSearcher{
		search: func(_ context.Context, dest domain.DestinationID, sel domain.FilterSelection) (domain.TipsResult, error) {
			return domain.TipsResult{
				Destination: dest,
				Selection:   sel,
				Records: []domain.TaggedRecommendation{{
					Recommendation: domain.Recommendation{Title: "SIM card"},
					Key:            "k1",
				}},
				Total:     1,
				Practical: true,
			}, nil
		},
	}

	rec := serve(newTipsHTTPHandler(svc), "/destinations/hong-kong/tips?format=csv&category=practical")

	require.Equal(t, http.StatusOK, rec.Code)
	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"k1", "hong-kong", "practical", "SIM card", "", "", "", "", "", "", "", ""}, rows[1])
}
