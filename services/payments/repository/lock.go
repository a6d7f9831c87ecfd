package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/constants"
	"github.com/hatynka/storefront/internal/pkg/database"
)

// DefaultOrderLockTTL bounds how long a crashed holder can block order creation
const DefaultOrderLockTTL = 30 * time.Second

// OrderLocker implements a per-transaction Redis lock
type OrderLocker struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewOrderLocker creates a new Redis backed order locker
func NewOrderLocker(redisClient *database.RedisClient, ttl time.Duration) *OrderLocker {
	if ttl <= 0 {
		ttl = DefaultOrderLockTTL
	}
	return &OrderLocker{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Acquire takes the lock for a transaction with SET NX PX
func (l *OrderLocker) Acquire(ctx context.Context, transactionID uuid.UUID) (string, bool, error) {
	token := uuid.NewString()
	key := fmt.Sprintf(constants.KeyTransactionOrderLock, transactionID)

	ok, err := l.redisClient.SetNX(ctx, key, token, l.ttl)
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire order lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release drops the lock only if it is still held with token
func (l *OrderLocker) Release(ctx context.Context, transactionID uuid.UUID, token string) error {
	key := fmt.Sprintf(constants.KeyTransactionOrderLock, transactionID)

	if _, err := l.redisClient.DeleteIfEquals(ctx, key, token); err != nil {
		return fmt.Errorf("failed to release order lock: %w", err)
	}
	return nil
}
