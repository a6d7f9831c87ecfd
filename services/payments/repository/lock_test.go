package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return &database.RedisClient{Client: client}, mr
}

func TestOrderLocker_AcquireRelease(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	locker := NewOrderLocker(redisClient, 10*time.Second)
	ctx := context.Background()
	txnID := uuid.New()
	key := fmt.Sprintf("lock:transaction:order:%s", txnID)

	token, ok, err := locker.Acquire(ctx, txnID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, token)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 10*time.Second, mr.TTL(key))

	_, ok, err = locker.Acquire(ctx, txnID)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	require.NoError(t, locker.Release(ctx, txnID, token))
	assert.False(t, mr.Exists(key))

	_, ok, err = locker.Acquire(ctx, txnID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOrderLocker_ReleaseWithStaleToken(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	locker := NewOrderLocker(redisClient, time.Second)
	ctx := context.Background()
	txnID := uuid.New()

	stale, ok, err := locker.Acquire(ctx, txnID)
	require.NoError(t, err)
	require.True(t, ok)

	// the lock expires and another caller takes it
	mr.FastForward(2 * time.Second)
	current, ok, err := locker.Acquire(ctx, txnID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, locker.Release(ctx, txnID, stale))
	got, err := mr.Get(fmt.Sprintf("lock:transaction:order:%s", txnID))
	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestOrderLocker_IndependentTransactions(t *testing.T) {
	redisClient, _ := setupMockRedis(t)
	locker := NewOrderLocker(redisClient, 0)
	ctx := context.Background()

	_, ok1, err := locker.Acquire(ctx, uuid.New())
	require.NoError(t, err)
	_, ok2, err := locker.Acquire(ctx, uuid.New())
	require.NoError(t, err)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, DefaultOrderLockTTL, locker.ttl)
}

func TestOrderLocker_RedisDown(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	locker := NewOrderLocker(redisClient, time.Second)
	mr.Close()

	_, ok, err := locker.Acquire(context.Background(), uuid.New())

	assert.False(t, ok)
	assert.ErrorContains(t, err, "failed to acquire order lock")
}
