package usecase

import (
	"context"
	"errors"

	"github.com/hatynka/storefront/internal/pkg/apperrors"
	"github.com/hatynka/storefront/internal/pkg/constants"
	"github.com/hatynka/storefront/internal/pkg/liqpay"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/hatynka/storefront/internal/utils"
	"github.com/hatynka/storefront/services/payments"
)

// HandleCallback processes a gateway webhook. Only configuration, missing
// fields, bad signatures and undecodable payloads are returned as errors;
// once the payload is trusted every other failure is logged and swallowed
// so the gateway is never asked to retry.
func (uc *PaymentUC) HandleCallback(ctx context.Context, req models.CallbackRequest) error {
	if !uc.liqpay.CanVerify() {
		logger.ErrorCtx(ctx, "Gateway callback received but private key is not configured")
		return apperrors.Configuration("payment gateway is not configured")
	}
	if req.Data == "" || req.Signature == "" {
		return apperrors.Validation("data and signature are required")
	}

	payload, err := uc.liqpay.VerifyCallback(req.Data, req.Signature)
	switch {
	case errors.Is(err, liqpay.ErrInvalidSignature):
		// nothing from the unverified payload is logged
		logger.WarnCtx(ctx, "Rejected gateway callback with invalid signature",
			logger.Int("data_length", len(req.Data)),
			logger.Int("signature_length", len(req.Signature)))
		return apperrors.Signature("invalid signature")
	case errors.Is(err, liqpay.ErrDecode):
		logger.WarnCtx(ctx, "Rejected gateway callback with malformed data", logger.Err(err))
		return apperrors.Decode(err)
	case err != nil:
		return apperrors.Internal("failed to verify callback", err)
	}

	// the raw status is stored and logged, so it is cleaned first
	rawStatus := utils.Truncate(utils.SanitizeString(payload.Status), constants.RawStatusMaxLength)
	status := uc.liqpay.MapStatus(rawStatus)
	if payload.OrderID == "" {
		logger.WarnCtx(ctx, "Gateway callback without order reference",
			logger.String("raw_status", rawStatus))
		return nil
	}

	txn, err := uc.paymentRepo.GetTransactionByGatewayOrderID(ctx, payload.OrderID)
	if errors.Is(err, payments.ErrNotFound) {
		logger.WarnCtx(ctx, "Gateway callback for unknown transaction",
			logger.String("gateway_order_id", payload.OrderID),
			logger.String("raw_status", rawStatus))
		return nil
	}
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to look up transaction for callback",
			logger.String("gateway_order_id", payload.OrderID),
			logger.Err(err))
		return nil
	}

	uc.applyStatus(ctx, txn, status, rawStatus)

	if status != models.TransactionStatusSucceeded || txn.Status != models.TransactionStatusSucceeded {
		return nil
	}
	if txn.HasOrder() {
		logger.InfoCtx(ctx, "Duplicate success callback ignored",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("order_id", txn.OrderID.String()))
		return nil
	}

	if _, err := uc.ensureOrder(ctx, txn, constants.CreatedByCallback); err != nil {
		logger.ErrorCtx(ctx, "Failed to create order from callback",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err))
	}
	return nil
}

// applyStatus stores the mapped status unless the stored one is frozen
func (uc *PaymentUC) applyStatus(ctx context.Context, txn *models.Transaction, status models.TransactionStatus, rawStatus string) {
	if !txn.Status.CanTransitionTo(status) {
		if txn.Status != status {
			logger.WarnCtx(ctx, "Ignoring status change for settled transaction",
				logger.String("transaction_id", txn.ID.String()),
				logger.String("stored_status", string(txn.Status)),
				logger.String("callback_status", string(status)))
		}
		return
	}

	if err := uc.paymentRepo.UpdateTransactionStatus(ctx, txn.ID, status, rawStatus); err != nil {
		logger.ErrorCtx(ctx, "Failed to update transaction status",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("status", string(status)),
			logger.Err(err))
		return
	}

	logger.InfoCtx(ctx, "Transaction status updated",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("from", string(txn.Status)),
		logger.String("to", string(status)))

	txn.Status = status
	txn.RawStatus = rawStatus

	if err := uc.paymentGW.PublishTransactionStatus(ctx, transactionEvent(txn, uc.now())); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transaction status event",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err))
	}
}
