package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/Domenick1991/airport-ops/internal/repository"
	"github.com/Domenick1991/airport-ops/internal/repository/repotest"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositories(t *testing.T) {
	s := repository.NewPGStorage(&pgxpool.Pool{})
	assert.NotNil(t, s.Users)
	assert.NotNil(t, s.Flights)
	assert.NotNil(t, s.Gates)
	assert.NotNil(t, s.Employees)
	assert.NotNil(t, s.Passengers)
	assert.NotNil(t, s.Stats)
}

// TestPGStorageContract runs against a real database when
// AIRPORT_TEST_DATABASE_URL is set. Tables are truncated before every case.
func TestPGStorageContract(t *testing.T) {
	dsn := os.Getenv("AIRPORT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("AIRPORT_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, repository.Migrate(ctx, pool))

	repotest.RunStorageContract(t, func(t *testing.T, clock repository.Clock) repository.Storage {
		_, err := pool.Exec(ctx, `TRUNCATE users, flights, gates, employees, passengers RESTART IDENTITY`)
		require.NoError(t, err)
		return repository.NewPGStorage(pool, repository.WithClock(clock))
	})
}
