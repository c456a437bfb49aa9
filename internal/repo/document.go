// Package repo contains all storage access for the trip dashboard.
// Trip documents are stored whole (one JSON document per kind); no business
// logic lives here, only SQL, file access and error mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DocumentRepo loads and stores raw trip documents by kind.
// The service layer depends on this interface, which lets it be unit-tested
// with an in-memory double.
type DocumentRepo interface {
	// Get returns the raw JSON body of the document.
	// Returns domain.ErrNotFound if no document of that kind exists.
	Get(ctx context.Context, kind domain.DocumentKind) ([]byte, error)

	// Create stores body as the document of the given kind unless one
	// already exists, in which case nothing is written and created is false.
	// Only used to seed an empty store; stored documents are never replaced.
	Create(ctx context.Context, kind domain.DocumentKind, body []byte) (created bool, err error)
}

// pgDocumentRepo is the Postgres implementation of DocumentRepo.
type pgDocumentRepo struct {
	db db
}

// NewDocumentRepo constructs a DocumentRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDocumentRepo(db db) DocumentRepo {
	return &pgDocumentRepo{db: db}
}

// Get selects the document body. json scans into []byte as raw JSON.
func (r *pgDocumentRepo) Get(ctx context.Context, kind domain.DocumentKind) ([]byte, error) {
	const q = `
		SELECT body
		FROM trip_documents
		WHERE kind = @kind`

	var body []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"kind": string(kind)}).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.DocumentRepo.Get: %s: %w", kind, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.DocumentRepo.Get: %w", err)
	}
	return body, nil
}

// Create inserts the document body. A concurrent seeder that loses the race
// hits the conflict clause and writes nothing.
func (r *pgDocumentRepo) Create(ctx context.Context, kind domain.DocumentKind, body []byte) (bool, error) {
	const q = `
		INSERT INTO trip_documents (kind, body)
		VALUES (@kind, @body::json)
		ON CONFLICT (kind) DO NOTHING`

	args := pgx.NamedArgs{
		"kind": string(kind),
		"body": string(body),
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return false, fmt.Errorf("repo.DocumentRepo.Create: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
