package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

// ErrReadOnly is returned by Create on a store that cannot be written.
var ErrReadOnly = errors.New("document store is read-only")

// fsDocumentRepo serves documents from "<kind>.json" files in an fs.FS,
// normally the data package compiled into the binary.
type fsDocumentRepo struct {
	fsys fs.FS
}

// NewEmbeddedDocumentRepo constructs a read-only DocumentRepo over fsys.
func NewEmbeddedDocumentRepo(fsys fs.FS) DocumentRepo {
	return &fsDocumentRepo{fsys: fsys}
}

// Get reads <kind>.json.
func (r *fsDocumentRepo) Get(_ context.Context, kind domain.DocumentKind) ([]byte, error) {
	body, err := fs.ReadFile(r.fsys, string(kind)+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("repo.EmbeddedDocumentRepo.Get: %s: %w", kind, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.EmbeddedDocumentRepo.Get: %w", err)
	}
	return body, nil
}

// Create always fails: embedded documents are compiled in.
func (r *fsDocumentRepo) Create(_ context.Context, kind domain.DocumentKind, _ []byte) (bool, error) {
	return false, fmt.Errorf("repo.EmbeddedDocumentRepo.Create: %s: %w", kind, ErrReadOnly)
}
