package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/models"
)

var (
	// ErrNotFound is returned when a transaction or order does not exist
	ErrNotFound = errors.New("payments: record not found")
	// ErrOrderExists is returned when an order is already bound to the transaction
	ErrOrderExists = errors.New("payments: order already exists for transaction")
)

// PaymentRepo defines the interface for transaction, order and cart persistence
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/hatynka/storefront/services/payments PaymentRepo,OrderLocker
type PaymentRepo interface {
	// Transactions
	CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetTransactionByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus, rawStatus string) error
	AttachOrder(ctx context.Context, transactionID, orderID uuid.UUID) error

	// Orders
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetOrderByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Order, error)

	// Carts
	MarkCartPurchased(ctx context.Context, cartID string, purchasedAt time.Time) error
}

// OrderLocker serializes order creation per transaction across instances
type OrderLocker interface {
	// Acquire returns a release token and true when the lock was taken
	Acquire(ctx context.Context, transactionID uuid.UUID) (string, bool, error)
	Release(ctx context.Context, transactionID uuid.UUID, token string) error
}
