package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/hatynka/storefront/internal/pkg/apperrors"
	"github.com/hatynka/storefront/internal/pkg/database"
	"github.com/hatynka/storefront/internal/pkg/liqpay"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/hatynka/storefront/services/payments/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flow struct {
	repo *memoryRepo
	uc   *PaymentUC
}

// newFlow wires the use case to an in-memory store and a real Redis lock
func newFlow(t *testing.T) *flow {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := testConfig()
	cfg.Payments.OrderLockRetries = 8

	repo := newMemoryRepo()
	locker := repository.NewOrderLocker(&database.RedisClient{Client: client}, cfg.Payments.OrderLockTTL)
	uc := NewPaymentUC(cfg, repo, locker, nopGW{}, liqpay.NewClient(cfg.LiqPay))
	uc.now = func() time.Time { return fixedNow }

	return &flow{repo: repo, uc: uc}
}

func (f *flow) initiate(t *testing.T) *models.InitiatePaymentResponse {
	resp, err := f.uc.InitiatePayment(context.Background(), guestRequest())
	require.NoError(t, err)
	return resp
}

func successCallback(t *testing.T, ref string) models.CallbackRequest {
	return signedCallback(t, map[string]interface{}{"order_id": ref, "status": "success", "amount": 500, "currency": "UAH"})
}

func TestFlow_InitiateThenWebhook(t *testing.T) {
	f := newFlow(t)
	resp := f.initiate(t)

	txn, err := f.repo.GetTransactionByGatewayOrderID(context.Background(), resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, txn.Status)
	assert.Regexp(t, gatewayOrderPattern, txn.GatewayOrderID)

	require.NoError(t, f.uc.HandleCallback(context.Background(), successCallback(t, resp.OrderID)))

	stored := f.repo.transaction(txn.ID)
	assert.Equal(t, models.TransactionStatusSucceeded, stored.Status)
	require.True(t, stored.HasOrder())

	order, err := f.repo.GetOrderByTransactionID(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.Equal(t, *stored.OrderID, order.ID)
	assert.Equal(t, "500", order.Amount.String())
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, fixedNow, f.repo.carts["cart-42"])
}

func TestFlow_DuplicateWebhook(t *testing.T) {
	f := newFlow(t)
	resp := f.initiate(t)

	require.NoError(t, f.uc.HandleCallback(context.Background(), successCallback(t, resp.OrderID)))
	first := f.repo.transaction(mustParse(t, resp.TransactionID))
	require.NoError(t, f.uc.HandleCallback(context.Background(), successCallback(t, resp.OrderID)))
	second := f.repo.transaction(mustParse(t, resp.TransactionID))

	assert.Equal(t, 1, f.repo.orderCount())
	assert.Equal(t, *first.OrderID, *second.OrderID)
}

func TestFlow_ConfirmBeforeWebhook(t *testing.T) {
	f := newFlow(t)
	resp := f.initiate(t)
	ctx := context.Background()

	_, err := f.uc.ConfirmOrder(ctx, confirmRequest(resp.OrderID))
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotConfirmed))

	// gateway marks the payment succeeded but the order step is lost
	txnID := mustParse(t, resp.TransactionID)
	require.NoError(t, f.repo.UpdateTransactionStatus(ctx, txnID, models.TransactionStatusSucceeded, "success"))

	confirmed, err := f.uc.ConfirmOrder(ctx, confirmRequest(resp.OrderID))
	require.NoError(t, err)
	assert.Equal(t, "Order confirmed", confirmed.Message)

	// the late webhook must not create a second order
	require.NoError(t, f.uc.HandleCallback(ctx, successCallback(t, resp.OrderID)))
	assert.Equal(t, 1, f.repo.orderCount())

	again, err := f.uc.ConfirmOrder(ctx, confirmRequest(resp.OrderID))
	require.NoError(t, err)
	assert.Equal(t, "Order already confirmed", again.Message)
	assert.Equal(t, confirmed.OrderID, again.OrderID)
}

func TestFlow_InvalidSignatureLeavesStateUntouched(t *testing.T) {
	f := newFlow(t)
	resp := f.initiate(t)

	data, err := liqpay.Encode(map[string]interface{}{"order_id": resp.OrderID, "status": "success"})
	require.NoError(t, err)
	err = f.uc.HandleCallback(context.Background(), models.CallbackRequest{Data: data, Signature: "AAAA"})

	assert.True(t, apperrors.IsKind(err, apperrors.KindSignature))
	assert.Equal(t, models.TransactionStatusPending, f.repo.transaction(mustParse(t, resp.TransactionID)).Status)
	assert.Equal(t, 0, f.repo.orderCount())
}

func TestFlow_ConcurrentWebhookAndConfirm(t *testing.T) {
	f := newFlow(t)
	resp := f.initiate(t)
	ctx := context.Background()
	txnID := mustParse(t, resp.TransactionID)
	require.NoError(t, f.repo.UpdateTransactionStatus(ctx, txnID, models.TransactionStatusSucceeded, "success"))

	callback := successCallback(t, resp.OrderID)

	const callers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		orderIDs = make(map[string]struct{})
	)

	for i := 0; i < callers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.uc.HandleCallback(ctx, callback))
		}()
		go func() {
			defer wg.Done()
			confirmed, err := f.uc.ConfirmOrder(ctx, confirmRequest(resp.OrderID))
			if err != nil {
				// contention may outlast the lock wait; the poller asks again
				assert.True(t, apperrors.IsKind(err, apperrors.KindNotConfirmed), "unexpected error: %v", err)
				return
			}
			mu.Lock()
			orderIDs[confirmed.OrderID] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.repo.orderCount())
	assert.LessOrEqual(t, len(orderIDs), 1)

	stored := f.repo.transaction(txnID)
	require.True(t, stored.HasOrder())
	for id := range orderIDs {
		assert.Equal(t, stored.OrderID.String(), id)
	}
}
