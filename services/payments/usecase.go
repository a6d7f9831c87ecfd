package payments

import (
	"context"

	"github.com/hatynka/storefront/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/hatynka/storefront/services/payments PaymentUC
type PaymentUC interface {
	InitiatePayment(ctx context.Context, req models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error)
	HandleCallback(ctx context.Context, req models.CallbackRequest) error
	ConfirmOrder(ctx context.Context, req models.ConfirmOrderRequest) (*models.ConfirmOrderResponse, error)
	GetTransaction(ctx context.Context, gatewayOrderID string) (*models.Transaction, error)
}
