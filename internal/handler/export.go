// Package handler: export.go renders a filtered tips view as CSV for
// GET /destinations/{destinationId}/tips?format=csv.
package handler

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"key", "destination", "bucket", "name", "description", "category",
	"priority", "priority_label", "location", "price_range", "dishes", "website",
}

// buildTipsCSVResponse encodes the filtered records as CSV and wraps them in
// the streaming response type. Dishes within a row are pipe-separated ("|")
// to keep each record on a single CSV line.
func buildTipsCSVResponse(r domain.TipsResult) gen.ListTips200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, rec := range r.Records {
		//nolint:errcheck
		w.Write(recommendationToCSVRecord(r, rec))
	}
	w.Flush()

	return gen.ListTips200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// recommendationToCSVRecord flattens one record. The bucket column is the
// tag set by the "all" view, or the selected bucket otherwise.
func recommendationToCSVRecord(r domain.TipsResult, rec domain.TaggedRecommendation) []string {
	bucket := rec.CategoryName
	if bucket == "" {
		bucket = r.Selection.Category
	}
	label := ""
	if rec.Priority != "" {
		label = rec.Priority.Label()
	}
	website := rec.Website
	if website == "" {
		website = rec.URL
	}
	return []string{
		rec.Key,
		string(r.Destination),
		bucket,
		rec.DisplayName(),
		rec.Description,
		rec.Category,
		string(rec.Priority),
		label,
		rec.Location,
		rec.PriceRange,
		strings.Join(rec.Dishes, "|"),
		website,
	}
}
