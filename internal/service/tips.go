package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/repo"
)

// FilterTips narrows one destination's buckets by the selection.
//
//   - Category "all": every bucket except practical, in document order, with
//     each surviving record tagged with its bucket name.
//   - Category practical: the whole bucket, ignoring search and priority.
//   - Any other category: that bucket only, untagged. An unknown bucket
//     yields an empty result.
//
// The input is never modified. The result is never nil, so an empty match
// stays distinguishable from "not loaded" downstream.
func FilterTips(tips domain.DestinationTips, sel domain.FilterSelection) []domain.TaggedRecommendation {
	hits := filterHits(tips, sel)
	out := make([]domain.TaggedRecommendation, len(hits))
	for i, h := range hits {
		out[i] = h.record
	}
	return out
}

// hit is a surviving record plus its position in the document.
type hit struct {
	bucket string
	index  int
	record domain.TaggedRecommendation
}

func filterHits(tips domain.DestinationTips, sel domain.FilterSelection) []hit {
	sel = sel.Normalize()
	needle := strings.ToLower(sel.SearchText)
	var out []hit

	switch sel.Category {
	case domain.CategoryAll:
		for _, b := range tips.Buckets {
			if b.Name == domain.BucketPractical {
				continue
			}
			for i, r := range b.Records {
				if matches(r, needle, sel.Priority) {
					out = append(out, hit{b.Name, i, domain.TaggedRecommendation{Recommendation: r, CategoryName: b.Name}})
				}
			}
		}

	case domain.BucketPractical:
		// Informational entries: shown as-is whatever the other facets say.
		b, _ := tips.Bucket(domain.BucketPractical)
		for i, r := range b.Records {
			out = append(out, hit{b.Name, i, domain.TaggedRecommendation{Recommendation: r}})
		}

	default:
		b, _ := tips.Bucket(sel.Category)
		for i, r := range b.Records {
			if matches(r, needle, sel.Priority) {
				out = append(out, hit{b.Name, i, domain.TaggedRecommendation{Recommendation: r}})
			}
		}
	}
	return out
}

// matches applies the search and priority facets. needle must already be
// lower-cased. A record without a priority never matches a specific one.
func matches(r domain.Recommendation, needle string, priority domain.Priority) bool {
	if priority != domain.PriorityAll && r.Priority != priority {
		return false
	}
	if needle == "" {
		return true
	}
	for _, field := range []string{r.Name, r.Description, r.Category} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// TipsService serves filtered views of the tips document.
type TipsService struct {
	docs repo.DocumentRepo
}

// NewTipsService constructs a TipsService backed by the provided DocumentRepo.
func NewTipsService(docs repo.DocumentRepo) *TipsService {
	return &TipsService{docs: docs}
}

// Search loads the tips document and filters one destination's buckets.
//
// A destination that has no entry in the document yields an empty result.
// A document that cannot be loaded or decoded yields domain.ErrUnavailable.
func (s *TipsService) Search(ctx context.Context, dest domain.DestinationID, sel domain.FilterSelection) (domain.TipsResult, error) {
	sel = sel.Normalize()

	doc, err := loadDocument[domain.TipsDocument](ctx, s.docs, domain.DocumentTips)
	if err != nil {
		return domain.TipsResult{}, fmt.Errorf("service.TipsService.Search: %w", err)
	}
	tips := doc[dest]

	hits := filterHits(tips, sel)
	records := make([]domain.TaggedRecommendation, len(hits))
	for i, h := range hits {
		records[i] = h.record
		records[i].Key = h.record.Recommendation.Key(dest, h.bucket, h.index)
	}

	return domain.TipsResult{
		Destination: dest,
		Selection:   sel,
		Records:     records,
		Total:       len(records),
		Categories:  domain.CategoryOptions(tips.BucketNames()),
		Practical:   sel.Category == domain.BucketPractical,
	}, nil
}
