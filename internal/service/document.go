package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/repo"
)

// loadDocument fetches and decodes one trip document. Any failure, including
// a missing document, is reported as domain.ErrUnavailable: the dashboard
// cannot tell the traveller "no results" when it never saw the data.
func loadDocument[T any](ctx context.Context, docs repo.DocumentRepo, kind domain.DocumentKind) (T, error) {
	var doc T

	body, err := docs.Get(ctx, kind)
	if err != nil {
		return doc, fmt.Errorf("load %s document: %w: %w", kind, domain.ErrUnavailable, err)
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return doc, fmt.Errorf("decode %s document: %w: %w", kind, domain.ErrUnavailable, err)
	}
	return doc, nil
}
