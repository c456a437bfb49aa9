package testutil_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-dashboard/backend/migrations"
	"github.com/pkordes/trip-dashboard/backend/testutil"
)

// TestMigrations_DocumentStore checks the schema the document repo relies
// on: the table exists, the body column is json (jsonb would reorder the
// tips buckets) and only known document kinds are accepted.
func TestMigrations_DocumentStore(t *testing.T) {
	pool := testutil.NewMigratedPool(t)
	ctx := context.Background()

	var dataType string
	err := pool.QueryRow(ctx, `
		SELECT data_type
		FROM information_schema.columns
		WHERE table_schema = 'public'
		AND   table_name   = 'trip_documents'
		AND   column_name  = 'body'`).Scan(&dataType)
	require.NoError(t, err, "trip_documents.body should exist")
	assert.Equal(t, "json", dataType)

	tx := testutil.NewDocumentTx(t)
	_, err = tx.Exec(ctx, `INSERT INTO trip_documents (kind, body) VALUES ('weather', '{}')`)
	assert.Error(t, err, "unknown kinds must violate the check constraint")
}

// TestMigrations_UpIsIdempotent verifies a second Up on a migrated database
// applies nothing, which is what every server start does.
func TestMigrations_UpIsIdempotent(t *testing.T) {
	testutil.NewMigratedPool(t)
	db := testutil.NewSQLDB(t)

	applied, err := migrations.Up(context.Background(), db)

	require.NoError(t, err)
	assert.Zero(t, applied)
}
