package payments

import (
	"context"

	"github.com/hatynka/storefront/internal/pkg/models"
)

// PaymentGW defines the interface for payment event publishing
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/hatynka/storefront/services/payments PaymentGW
type PaymentGW interface {
	PublishTransactionCreated(ctx context.Context, event models.TransactionEvent) error
	PublishTransactionStatus(ctx context.Context, event models.TransactionEvent) error
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}
