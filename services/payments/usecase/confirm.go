package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/hatynka/storefront/internal/pkg/apperrors"
	"github.com/hatynka/storefront/internal/pkg/constants"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/hatynka/storefront/services/payments"
)

// ConfirmOrder returns the order for a transaction, creating it when the
// transaction already succeeded but the webhook has not done so yet
func (uc *PaymentUC) ConfirmOrder(ctx context.Context, req models.ConfirmOrderRequest) (*models.ConfirmOrderResponse, error) {
	gatewayOrderID := strings.TrimSpace(req.AdditionalData.OrderID)
	if gatewayOrderID == "" {
		return nil, apperrors.Validation("orderID is required")
	}

	txn, err := uc.paymentRepo.GetTransactionByGatewayOrderID(ctx, gatewayOrderID)
	if errors.Is(err, payments.ErrNotFound) {
		return nil, apperrors.NotFound("transaction not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to load transaction", err)
	}

	if txn.HasOrder() {
		return &models.ConfirmOrderResponse{
			Message:       "Order already confirmed",
			OrderID:       txn.OrderID.String(),
			TransactionID: txn.ID.String(),
		}, nil
	}

	if txn.Status != models.TransactionStatusSucceeded {
		return nil, apperrors.NotConfirmed("payment is not confirmed yet").WithCause(string(txn.Status))
	}

	orderID, err := uc.ensureOrder(ctx, txn, constants.CreatedByConfirm)
	if errors.Is(err, errLockHeld) {
		// the other caller will finish shortly; the poller asks again
		return nil, apperrors.NotConfirmed("order is being created")
	}
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create order from confirmation",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err))
		return nil, apperrors.Internal("failed to create order", err)
	}

	return &models.ConfirmOrderResponse{
		Message:       "Order confirmed",
		OrderID:       orderID.String(),
		TransactionID: txn.ID.String(),
	}, nil
}

// GetTransaction returns a transaction by its gateway order reference
func (uc *PaymentUC) GetTransaction(ctx context.Context, gatewayOrderID string) (*models.Transaction, error) {
	gatewayOrderID = strings.TrimSpace(gatewayOrderID)
	if gatewayOrderID == "" {
		return nil, apperrors.Validation("order reference is required")
	}

	txn, err := uc.paymentRepo.GetTransactionByGatewayOrderID(ctx, gatewayOrderID)
	if errors.Is(err, payments.ErrNotFound) {
		return nil, apperrors.NotFound("transaction not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to load transaction", err)
	}
	return txn, nil
}
