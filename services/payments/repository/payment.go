package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/models"
	nrpkg "github.com/hatynka/storefront/internal/pkg/newrelic"
	"github.com/hatynka/storefront/services/payments"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const transactionColumns = `
	id, gateway_order_id, amount, currency, status, raw_status, payment_method,
	customer_id, customer_email, items, shipping_address, cart_id, liqpay,
	order_id, created_at, updated_at`

const orderColumns = `
	id, amount, currency, customer_id, customer_email, items, shipping_address,
	status, transaction_id, transactions, created_at`

// PaymentRepo implements the payments repository interface on Postgres
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payments repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTransaction inserts a new transaction, assigning its id and timestamps
func (r *PaymentRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO transactions (
			id, gateway_order_id, amount, currency, status, raw_status, payment_method,
			customer_id, customer_email, items, shipping_address, cart_id, liqpay,
			created_at, updated_at
		) VALUES (
			:id, :gateway_order_id, :amount, :currency, :status, :raw_status, :payment_method,
			:customer_id, :customer_email, :items, :shipping_address, :cart_id, :liqpay,
			:created_at, :updated_at
		)
	`

	err := nrpkg.WithDatastoreSegment(ctx, "transactions", "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return txn, nil
}

// GetTransactionByID retrieves a transaction by its store id
func (r *PaymentRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.getTransaction(ctx, query, id)
}

// GetTransactionByGatewayOrderID retrieves a transaction by its txn_ reference
func (r *PaymentRepo) GetTransactionByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE gateway_order_id = $1`
	return r.getTransaction(ctx, query, gatewayOrderID)
}

func (r *PaymentRepo) getTransaction(ctx context.Context, query string, arg interface{}) (*models.Transaction, error) {
	var txn models.Transaction
	err := nrpkg.WithDatastoreSegment(ctx, "transactions", "SELECT", func() error {
		return r.db.GetContext(ctx, &txn, query, arg)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// UpdateTransactionStatus stores the mapped status and the raw gateway status
func (r *PaymentRepo) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus, rawStatus string) error {
	query := `
		UPDATE transactions
		SET status = $1, raw_status = $2, updated_at = $3
		WHERE id = $4
	`

	return r.execOne(ctx, "UPDATE", query, status, rawStatus, time.Now(), id)
}

// AttachOrder back-links an order to its transaction
func (r *PaymentRepo) AttachOrder(ctx context.Context, transactionID, orderID uuid.UUID) error {
	query := `
		UPDATE transactions
		SET order_id = $1, updated_at = $2
		WHERE id = $3
	`

	return r.execOne(ctx, "UPDATE", query, orderID, time.Now(), transactionID)
}

func (r *PaymentRepo) execOne(ctx context.Context, operation, query string, args ...interface{}) error {
	var result sql.Result
	err := nrpkg.WithDatastoreSegment(ctx, "transactions", operation, func() error {
		var err error
		result, err = r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return payments.ErrNotFound
	}
	return nil
}

// CreateOrder inserts an order. A second order for the same transaction is
// rejected by the unique index and reported as payments.ErrOrderExists.
func (r *PaymentRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.Transactions == nil {
		order.Transactions = pq.StringArray{order.TransactionID.String()}
	}

	query := `
		INSERT INTO orders (
			id, amount, currency, customer_id, customer_email, items, shipping_address,
			status, transaction_id, transactions, created_at
		) VALUES (
			:id, :amount, :currency, :customer_id, :customer_email, :items, :shipping_address,
			:status, :transaction_id, :transactions, :created_at
		)
	`

	err := nrpkg.WithDatastoreSegment(ctx, "orders", "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, order)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, payments.ErrOrderExists
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// GetOrderByTransactionID retrieves the order created for a transaction
func (r *PaymentRepo) GetOrderByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE transaction_id = $1`

	var order models.Order
	err := nrpkg.WithDatastoreSegment(ctx, "orders", "SELECT", func() error {
		return r.db.GetContext(ctx, &order, query, transactionID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// MarkCartPurchased stamps the cart's purchase time
func (r *PaymentRepo) MarkCartPurchased(ctx context.Context, cartID string, purchasedAt time.Time) error {
	query := `
		INSERT INTO carts (id, purchased_at) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET purchased_at = EXCLUDED.purchased_at
	`

	err := nrpkg.WithDatastoreSegment(ctx, "carts", "UPSERT", func() error {
		_, err := r.db.ExecContext(ctx, query, cartID, purchasedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to mark cart purchased: %w", err)
	}
	return nil
}

// isUniqueViolation recognises duplicate-key errors from both pgx and lib/pq
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
