package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

// Seed copies every document kind that dst does not have yet from src.
// Documents already present in dst are left untouched, so re-running Seed
// on every start, or from several instances at once, never overwrites
// stored data. It returns the kinds this call wrote.
func Seed(ctx context.Context, dst, src DocumentRepo) ([]domain.DocumentKind, error) {
	var seeded []domain.DocumentKind
	for _, kind := range domain.DocumentKinds() {
		_, err := dst.Get(ctx, kind)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return seeded, fmt.Errorf("repo.Seed: check %s: %w", kind, err)
		}

		body, err := src.Get(ctx, kind)
		if err != nil {
			return seeded, fmt.Errorf("repo.Seed: read %s: %w", kind, err)
		}
		created, err := dst.Create(ctx, kind, body)
		if err != nil {
			return seeded, fmt.Errorf("repo.Seed: write %s: %w", kind, err)
		}
		if created {
			seeded = append(seeded, kind)
		}
	}
	return seeded, nil
}
