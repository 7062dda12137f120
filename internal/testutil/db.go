package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/fanout/internal/domain"
	"github.com/footprint-tools/fanout/internal/store"
	"github.com/footprint-tools/fanout/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db), "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a store.Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedPlayers joins every name and returns the players in the same order.
func SeedPlayers(t *testing.T, s domain.RosterStore, names ...string) []domain.Player {
	t.Helper()

	out := make([]domain.Player, 0, len(names))
	for _, name := range names {
		p, _, err := s.Join(name)
		require.NoError(t, err, "failed to seed player %s", name)
		out = append(out, p)
	}
	return out
}
