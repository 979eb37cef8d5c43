package db_test

import (
	"context"
	"testing"

	"github.com/dhanush7123/sanskrit-spark/internal/db"
	"github.com/dhanush7123/sanskrit-spark/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	sqlDB := testutil.NewTestDB(t)
	defer testutil.MustClose(t, sqlDB)

	require.NoError(t, db.Migrate(context.Background(), sqlDB))

	var applied int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 2, applied)

	var seeded int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM leaderboard_entries`).Scan(&seeded))
	assert.Equal(t, 5, seeded, "seed rows must not be inserted twice")
}
