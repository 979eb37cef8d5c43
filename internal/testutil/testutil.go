package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dhanush7123/sanskrit-spark/internal/db"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied,
// including the seeded leaderboard. A single connection is used so every
// query sees the same in-memory database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB), "failed to apply migrations")
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// CreateProfile inserts a profile row and returns its id.
func CreateProfile(t *testing.T, sqlDB *sql.DB, name string) int64 {
	res, err := sqlDB.Exec(`INSERT INTO profiles (name) VALUES (?)`, name)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}
