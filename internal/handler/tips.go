package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/handler/gen"
)

// ListTips handles GET /destinations/{destinationId}/tips.
// Query parameters q, category and priority form the filter selection; an
// absent or empty value means "all". Use ?format=csv to receive CSV.
func (s *Server) ListTips(ctx context.Context, req gen.ListTipsRequestObject) (gen.ListTipsResponseObject, error) {
	dest, err := domain.ParseDestinationID(string(req.DestinationId))
	if err != nil {
		return gen.ListTips404JSONResponse(notFoundBody("destination not found")), nil
	}

	sel, err := paramsToSelection(req.Params)
	if err != nil {
		return gen.ListTips422JSONResponse(validationBody(err)), nil
	}

	wantCSV := false
	if f := req.Params.Format; f != nil {
		switch *f {
		case gen.Csv:
			wantCSV = true
		case gen.Json:
		default:
			return gen.ListTips422JSONResponse(requestBody(fmt.Sprintf("format must be %q or %q", gen.Json, gen.Csv))), nil
		}
	}

	result, err := s.tips.Search(ctx, dest, sel)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return gen.ListTips503JSONResponse(unavailableBody(ctx, err)), nil
		}
		return nil, err
	}

	if wantCSV {
		return buildTipsCSVResponse(result), nil
	}
	return gen.ListTips200JSONResponse(tipsToResponse(result)), nil
}

// ListPriorities handles GET /priorities.
func (s *Server) ListPriorities(ctx context.Context, _ gen.ListPrioritiesRequestObject) (gen.ListPrioritiesResponseObject, error) {
	ps := domain.Priorities()
	out := make(gen.ListPriorities200JSONResponse, len(ps))
	for i, p := range ps {
		out[i] = gen.PriorityOption{
			Id:           gen.Priority(p),
			Label:        p.Label(),
			FilterOption: p.IsFilterOption(),
		}
	}
	return out, nil
}

// paramsToSelection builds the filter selection from query parameters.
// Returns a domain.ErrValidation error for an unknown priority.
func paramsToSelection(p gen.ListTipsParams) (domain.FilterSelection, error) {
	sel := domain.DefaultSelection()
	if p.Q != nil {
		sel.SearchText = *p.Q
	}
	if p.Category != nil && *p.Category != "" {
		sel.Category = *p.Category
	}
	if p.Priority != nil {
		pr, err := domain.ParsePriorityFilter(*p.Priority)
		if err != nil {
			return domain.FilterSelection{}, err
		}
		sel.Priority = pr
	}
	return sel, nil
}

// tipsToResponse maps a domain.TipsResult to the generated type, including
// the selection each destination tab would switch to.
func tipsToResponse(r domain.TipsResult) gen.TipsResponse {
	records := make([]gen.Recommendation, len(r.Records))
	for i, rec := range r.Records {
		records[i] = recommendationToResponse(rec)
	}

	categories := make([]gen.CategoryOption, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = gen.CategoryOption{Id: c.ID, Label: c.Label, Icon: c.Icon}
	}

	next := selectionToResponse(r.Selection.SwitchDestination())
	dests := domain.Destinations()
	tabs := make([]gen.DestinationTab, len(dests))
	for i, d := range dests {
		tabs[i] = gen.DestinationTab{DestinationId: gen.DestinationId(d.ID), Label: d.Label, Selection: next}
	}

	return gen.TipsResponse{
		DestinationId: gen.DestinationId(r.Destination),
		Selection:     selectionToResponse(r.Selection),
		Total:         r.Total,
		Practical:     r.Practical,
		Records:       records,
		Categories:    categories,
		Tabs:          tabs,
	}
}

func selectionToResponse(s domain.FilterSelection) gen.FilterSelection {
	return gen.FilterSelection{Q: s.SearchText, Category: s.Category, Priority: string(s.Priority)}
}

func recommendationToResponse(r domain.TaggedRecommendation) gen.Recommendation {
	out := gen.Recommendation{
		Key:          r.Key,
		CategoryName: optString(r.CategoryName),
		Name:         optString(r.Name),
		Title:        optString(r.Title),
		Description:  optString(r.Description),
		Category:     optString(r.Category),
		Location:     optString(r.Location),
		Area:         optString(r.Area),
		Dishes:       optStrings(r.Dishes),
		PriceRange:   optString(r.PriceRange),
		Difficulty:   optString(r.Difficulty),
		Duration:     optString(r.Duration),
		Time:         optString(r.Time),
		OpeningDays:  optStrings(r.OpeningDays),
		Tips:         optString(r.Tips),
		Note:         optString(r.Note),
		Source:       optString(r.Source),
		Website:      optString(r.Website),
		Url:          optString(r.URL),
		Deadline:     optString(r.Deadline),
	}
	if r.Priority != "" {
		p := gen.Priority(r.Priority)
		out.Priority = &p
		out.PriorityLabel = optString(r.Priority.Label())
	}
	return out
}
