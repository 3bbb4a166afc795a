package service

import (
	"context"
	"testing"
	"time"

	"clinic-booking/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestTokenStoreLifecycle(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisTokenStore(client)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Store(ctx, jwt.AccessToken, userID, "tok-1", time.Minute))
	assert.True(t, mr.Exists("access_token:"+userID.String()+":tok-1"))

	ok, err := store.Exists(ctx, jwt.AccessToken, userID, "tok-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// same id under the other token type is a different entry
	ok, err = store.Exists(ctx, jwt.RefreshToken, userID, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Revoke(ctx, jwt.AccessToken, userID, "tok-1"))
	ok, err = store.Exists(ctx, jwt.AccessToken, userID, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenStoreExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisTokenStore(client)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Store(ctx, jwt.RefreshToken, userID, "tok-2", time.Minute))
	mr.FastForward(2 * time.Minute)

	ok, err := store.Exists(ctx, jwt.RefreshToken, userID, "tok-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
