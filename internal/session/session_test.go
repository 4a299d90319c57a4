package session

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airport-ops/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Hour)
	s.now = func() time.Time { return now }

	token, err := s.Create(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := s.Lookup(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	// lookups slide the expiry forward
	now = now.Add(50 * time.Minute)
	_, err = s.Lookup(ctx, token)
	require.NoError(t, err)
	now = now.Add(50 * time.Minute)
	_, err = s.Lookup(ctx, token)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = s.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Destroy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	token, err := s.Create(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.Destroy(ctx, token))

	_, err = s.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Lookup(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStore(t *testing.T) {
	client := NewRedisClient(config.RedisConfig{Addr: "localhost:6379"})
	defer client.Close()
	assert.NotNil(t, NewRedisStore(client, time.Hour))
	assert.Equal(t, "session:abc", sessionKey("abc"))
}
