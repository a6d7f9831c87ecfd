package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/apperrors"
	"github.com/hatynka/storefront/internal/pkg/constants"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/hatynka/storefront/internal/utils"
)

// InitiatePayment validates the cart snapshot, stores a pending transaction
// and returns the signed checkout envelope for the gateway
func (uc *PaymentUC) InitiatePayment(ctx context.Context, req models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error) {
	if err := uc.validateInitiation(req); err != nil {
		return nil, err
	}

	data := req.AdditionalData
	email := strings.TrimSpace(data.CustomerEmail)
	cartID := data.Cart.ID.String()
	amount := data.Cart.Subtotal.Round(2)

	txn := &models.Transaction{
		ID:              uuid.New(),
		GatewayOrderID:  constants.GatewayOrderPrefix + uuid.NewString(),
		Amount:          amount,
		Currency:        uc.currency(),
		Status:          models.TransactionStatusPending,
		PaymentMethod:   models.PaymentMethodLiqPay,
		Items:           data.Cart.LineItems(),
		ShippingAddress: data.ShippingAddress,
		CartID:          &cartID,
	}
	if req.CustomerID != nil {
		customerID := *req.CustomerID
		txn.CustomerID = &customerID
	} else {
		txn.CustomerEmail = &email
	}
	txn.LiqPay = models.LiqPayDetails{
		OrderID:         txn.GatewayOrderID,
		ShippingAddress: data.ShippingAddress,
	}

	checkout := uc.liqpay.NewCheckoutRequest(
		txn.Amount,
		txn.Currency,
		fmt.Sprintf("Order payment %s", txn.ID),
		txn.GatewayOrderID,
		uc.resultURL(txn.GatewayOrderID, email),
		uc.serverURL(),
	)
	envelope, err := uc.liqpay.Envelope(checkout)
	if err != nil {
		return nil, apperrors.Internal("failed to sign checkout request", err)
	}

	created, err := uc.paymentRepo.CreateTransaction(ctx, txn)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create transaction",
			logger.String("gateway_order_id", txn.GatewayOrderID),
			logger.Err(err))
		return nil, apperrors.Internal("failed to create transaction", err)
	}

	if err := uc.paymentGW.PublishTransactionCreated(ctx, transactionEvent(created, uc.now())); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transaction created event",
			logger.String("transaction_id", created.ID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Payment initiated",
		logger.String("transaction_id", created.ID.String()),
		logger.String("gateway_order_id", created.GatewayOrderID),
		logger.String("amount", created.Amount.StringFixed(2)),
		logger.Bool("guest", created.CustomerID == nil),
		logger.String("customer_email", utils.MaskEmail(created.Email())))

	return &models.InitiatePaymentResponse{
		CheckoutURL:   uc.liqpay.CheckoutURL(),
		Data:          envelope.Data,
		Signature:     envelope.Signature,
		OrderID:       created.GatewayOrderID,
		Message:       "Payment initiated",
		TransactionID: created.ID.String(),
	}, nil
}

// validateInitiation runs the initiation checks in their fixed order and
// returns the first failure
func (uc *PaymentUC) validateInitiation(req models.InitiatePaymentRequest) error {
	data := req.AdditionalData

	if !uc.liqpay.Configured() {
		return apperrors.Configuration("payment gateway is not configured")
	}
	if data.Currency != uc.currency() {
		return apperrors.UnsupportedCurrency(data.Currency)
	}
	if data.Cart == nil || len(data.Cart.Items) == 0 {
		return apperrors.EmptyCart()
	}
	if req.CustomerID == nil && strings.TrimSpace(data.CustomerEmail) == "" {
		return apperrors.MissingCustomer()
	}
	// amounts are signed at minor-unit precision
	if data.Cart.Subtotal == nil || !data.Cart.Subtotal.Round(2).IsPositive() {
		return apperrors.InvalidAmount()
	}
	if data.Cart.ID.String() == "" {
		return apperrors.InvalidCart()
	}

	for i, item := range data.Cart.Items {
		if item.Product.String() == "" {
			return apperrors.Validation(fmt.Sprintf("cart item %d has no product", i))
		}
		if item.Quantity < 1 {
			return apperrors.Validation(fmt.Sprintf("cart item %d has an invalid quantity", i))
		}
		if item.InStock != nil && !*item.InStock {
			return apperrors.OutOfStock(item.Product.String())
		}
	}

	return nil
}

// resultURL is where the gateway sends the shopper back after checkout
func (uc *PaymentUC) resultURL(gatewayOrderID, email string) string {
	base := strings.TrimRight(uc.cfg.Storefront.SiteURL, "/")
	u := fmt.Sprintf("%s/checkout/confirm-order?payment=%s&order_id=%s",
		base, models.PaymentMethodLiqPay, url.QueryEscape(gatewayOrderID))
	if email != "" {
		u += "&email=" + url.QueryEscape(email)
	}
	return u
}

// serverURL is the webhook address the gateway posts callbacks to
func (uc *PaymentUC) serverURL() string {
	base := strings.TrimRight(uc.cfg.Storefront.APIURL, "/")
	return fmt.Sprintf("%s/api/payments/%s/callback", base, models.PaymentMethodLiqPay)
}
