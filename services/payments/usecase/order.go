package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/hatynka/storefront/internal/utils"
	"github.com/hatynka/storefront/services/payments"
)

// ensureOrder creates the order for a succeeded transaction at most once and
// returns its id. The webhook and the confirmation RPC both come through here.
// Creation is serialized per transaction by the order lock, and the unique
// index on orders.transaction_id rejects any second insert that slips past it.
func (uc *PaymentUC) ensureOrder(ctx context.Context, txn *models.Transaction, createdBy string) (uuid.UUID, error) {
	if txn.HasOrder() {
		return *txn.OrderID, nil
	}

	token, lockErr := uc.acquireOrderLock(ctx, txn.ID)
	switch {
	case lockErr == nil:
		defer uc.releaseOrderLock(txn.ID, token)
	case errors.Is(lockErr, errLockHeld):
		// another caller is mid-creation; only the re-read below may answer
	case ctx.Err() != nil:
		return uuid.Nil, ctx.Err()
	default:
		// Redis is unavailable: fall through on the unique index alone
		logger.WarnCtx(ctx, "Creating order without lock",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(lockErr))
	}

	current, err := uc.paymentRepo.GetTransactionByID(ctx, txn.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to re-read transaction: %w", err)
	}
	if current.HasOrder() {
		return *current.OrderID, nil
	}
	if errors.Is(lockErr, errLockHeld) {
		return uuid.Nil, lockErr
	}
	if current.Status != models.TransactionStatusSucceeded {
		return uuid.Nil, fmt.Errorf("transaction %s is %s", current.ID, current.Status)
	}

	order, err := uc.paymentRepo.CreateOrder(ctx, models.NewOrderFromTransaction(current))
	if errors.Is(err, payments.ErrOrderExists) {
		return uc.adoptExistingOrder(ctx, current)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.markCartPurchased(ctx, current)

	if err := uc.paymentRepo.AttachOrder(ctx, current.ID, order.ID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to attach order: %w", err)
	}

	logger.InfoCtx(ctx, "Order created",
		logger.String("order_id", order.ID.String()),
		logger.String("transaction_id", current.ID.String()),
		logger.String("created_by", createdBy),
		logger.String("customer_email", utils.MaskEmail(current.Email())))

	event := models.OrderCreatedEvent{
		OrderID:        order.ID.String(),
		TransactionID:  current.ID.String(),
		GatewayOrderID: current.GatewayOrderID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		CustomerEmail:  current.Email(),
		Items:          order.Items,
		CreatedBy:      createdBy,
		OccurredAt:     uc.now().UTC(),
	}
	if err := uc.paymentGW.PublishOrderCreated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish order created event",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}

	return order.ID, nil
}

// adoptExistingOrder returns the order another caller created and makes
// sure the transaction points at it
func (uc *PaymentUC) adoptExistingOrder(ctx context.Context, txn *models.Transaction) (uuid.UUID, error) {
	existing, err := uc.paymentRepo.GetOrderByTransactionID(ctx, txn.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load existing order: %w", err)
	}

	if err := uc.paymentRepo.AttachOrder(ctx, txn.ID, existing.ID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to attach order: %w", err)
	}

	logger.InfoCtx(ctx, "Order already created by another caller",
		logger.String("order_id", existing.ID.String()),
		logger.String("transaction_id", txn.ID.String()))

	return existing.ID, nil
}

// markCartPurchased stamps the source cart. Failures are logged only.
func (uc *PaymentUC) markCartPurchased(ctx context.Context, txn *models.Transaction) {
	if txn.CartID == nil || *txn.CartID == "" {
		logger.WarnCtx(ctx, "Transaction has no cart to mark as purchased",
			logger.String("transaction_id", txn.ID.String()))
		return
	}

	if err := uc.paymentRepo.MarkCartPurchased(ctx, *txn.CartID, uc.now()); err != nil {
		logger.ErrorCtx(ctx, "Failed to mark cart as purchased",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("cart_id", *txn.CartID),
			logger.Err(err))
	}
}

// acquireOrderLock waits for the per-transaction lock with bounded retries
func (uc *PaymentUC) acquireOrderLock(ctx context.Context, transactionID uuid.UUID) (string, error) {
	var token string
	err := uc.lockRetrier.Execute(ctx, func(ctx context.Context) error {
		t, ok, err := uc.orderLocker.Acquire(ctx, transactionID)
		if err != nil {
			return err
		}
		if !ok {
			return errLockHeld
		}
		token = t
		return nil
	})
	return token, err
}

func (uc *PaymentUC) releaseOrderLock(transactionID uuid.UUID, token string) {
	// release even when the request context is already cancelled
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := uc.orderLocker.Release(ctx, transactionID, token); err != nil {
		logger.Warn("Failed to release order lock",
			logger.String("transaction_id", transactionID.String()),
			logger.Err(err))
	}
}

func transactionEvent(txn *models.Transaction, at time.Time) models.TransactionEvent {
	return models.TransactionEvent{
		TransactionID:  txn.ID.String(),
		GatewayOrderID: txn.GatewayOrderID,
		Status:         txn.Status,
		RawStatus:      txn.RawStatus,
		Amount:         txn.Amount,
		Currency:       txn.Currency,
		OccurredAt:     at.UTC(),
	}
}
