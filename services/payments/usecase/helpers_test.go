package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/liqpay"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/hatynka/storefront/services/payments"
	"github.com/hatynka/storefront/services/payments/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testPublicKey  = "sandbox_i000000"
	testPrivateKey = "sandbox_secret_key"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{
		LiqPay: models.LiqPayConfig{
			PublicKey:  testPublicKey,
			PrivateKey: testPrivateKey,
			Language:   "uk",
		},
		Storefront: models.StorefrontConfig{
			SiteURL:  "https://shop.example",
			APIURL:   "https://api.shop.example/",
			Currency: "UAH",
		},
		Payments: models.PaymentsConfig{
			OrderLockTTL:      5 * time.Second,
			OrderLockRetries:  2,
			OrderLockBaseWait: time.Millisecond,
		},
	}
}

type fixture struct {
	cfg    *models.Config
	repo   *mocks.MockPaymentRepo
	locker *mocks.MockOrderLocker
	gw     *mocks.MockPaymentGW
	uc     *PaymentUC
}

func newFixture(t *testing.T, cfg *models.Config) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		cfg:    cfg,
		repo:   mocks.NewMockPaymentRepo(ctrl),
		locker: mocks.NewMockOrderLocker(ctrl),
		gw:     mocks.NewMockPaymentGW(ctrl),
	}
	f.uc = NewPaymentUC(cfg, f.repo, f.locker, f.gw, liqpay.NewClient(cfg.LiqPay))
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

// observeLogs swaps the global logger for an in-memory one for the test
func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetGlobalLogger(logger.NewFromZap(zap.New(core)))
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })
	return logs
}

// signedCallback builds a callback body signed with the test private key
func signedCallback(t *testing.T, fields map[string]interface{}) models.CallbackRequest {
	data, err := liqpay.Encode(fields)
	require.NoError(t, err)
	return models.CallbackRequest{Data: data, Signature: liqpay.Sign(testPrivateKey, data)}
}

func mustParse(t *testing.T, s string) uuid.UUID {
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func pendingTransaction() *models.Transaction {
	email := "a@b.com"
	cartID := "cart-42"
	id := uuid.New()
	return &models.Transaction{
		ID:             id,
		GatewayOrderID: "txn_" + uuid.NewString(),
		Amount:         decimal.NewFromInt(500),
		Currency:       "UAH",
		Status:         models.TransactionStatusPending,
		PaymentMethod:  models.PaymentMethodLiqPay,
		CustomerEmail:  &email,
		Items:          models.LineItems{{ProductID: "p1", Quantity: 2}},
		CartID:         &cartID,
	}
}

func withStatus(txn *models.Transaction, status models.TransactionStatus) *models.Transaction {
	clone := *txn
	clone.Status = status
	return &clone
}

func withOrder(txn *models.Transaction, orderID uuid.UUID) *models.Transaction {
	clone := *txn
	clone.OrderID = &orderID
	return &clone
}

// memoryRepo is an in-memory PaymentRepo that enforces the same unique
// order-per-transaction rule as the orders.transaction_id index
type memoryRepo struct {
	mu     sync.Mutex
	txns   map[uuid.UUID]models.Transaction
	orders map[uuid.UUID]models.Order
	carts  map[string]time.Time

	createOrderCalls int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		txns:   make(map[uuid.UUID]models.Transaction),
		orders: make(map[uuid.UUID]models.Order),
		carts:  make(map[string]time.Time),
	}
}

func (r *memoryRepo) CreateTransaction(_ context.Context, txn *models.Transaction) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	r.txns[txn.ID] = *txn
	clone := *txn
	return &clone, nil
}

func (r *memoryRepo) GetTransactionByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[id]
	if !ok {
		return nil, payments.ErrNotFound
	}
	return &txn, nil
}

func (r *memoryRepo) GetTransactionByGatewayOrderID(_ context.Context, ref string) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, txn := range r.txns {
		if txn.GatewayOrderID == ref {
			clone := txn
			return &clone, nil
		}
	}
	return nil, payments.ErrNotFound
}

func (r *memoryRepo) UpdateTransactionStatus(_ context.Context, id uuid.UUID, status models.TransactionStatus, raw string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[id]
	if !ok {
		return payments.ErrNotFound
	}
	txn.Status = status
	txn.RawStatus = raw
	r.txns[id] = txn
	return nil
}

func (r *memoryRepo) AttachOrder(_ context.Context, transactionID, orderID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	txn, ok := r.txns[transactionID]
	if !ok {
		return payments.ErrNotFound
	}
	txn.OrderID = &orderID
	r.txns[transactionID] = txn
	return nil
}

func (r *memoryRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createOrderCalls++
	if _, exists := r.orders[order.TransactionID]; exists {
		return nil, payments.ErrOrderExists
	}
	r.orders[order.TransactionID] = *order
	clone := *order
	return &clone, nil
}

func (r *memoryRepo) GetOrderByTransactionID(_ context.Context, transactionID uuid.UUID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[transactionID]
	if !ok {
		return nil, payments.ErrNotFound
	}
	return &order, nil
}

func (r *memoryRepo) MarkCartPurchased(_ context.Context, cartID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cartID] = at
	return nil
}

func (r *memoryRepo) orderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func (r *memoryRepo) transaction(id uuid.UUID) models.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.txns[id]
}

// nopGW discards every event
type nopGW struct{}

func (nopGW) PublishTransactionCreated(context.Context, models.TransactionEvent) error { return nil }
func (nopGW) PublishTransactionStatus(context.Context, models.TransactionEvent) error  { return nil }
func (nopGW) PublishOrderCreated(context.Context, models.OrderCreatedEvent) error      { return nil }
