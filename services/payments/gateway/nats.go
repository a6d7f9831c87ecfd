package gateway

import (
	"context"

	"github.com/hatynka/storefront/internal/pkg/constants"
	"github.com/hatynka/storefront/internal/pkg/models"
	natspkg "github.com/hatynka/storefront/internal/pkg/nats"
	"github.com/hatynka/storefront/services/payments"
)

// PaymentGW handles NATS publishing for payment events
type PaymentGW struct {
	natsClient *natspkg.Client
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(client *natspkg.Client) payments.PaymentGW {
	return &PaymentGW{
		natsClient: client,
	}
}

// PublishTransactionCreated publishes a transaction created event to NATS
func (g *PaymentGW) PublishTransactionCreated(ctx context.Context, event models.TransactionEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectTransactionCreated, event)
}

// PublishTransactionStatus publishes a transaction status change to NATS
func (g *PaymentGW) PublishTransactionStatus(ctx context.Context, event models.TransactionEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectTransactionStatus, event)
}

// PublishOrderCreated publishes an order created event to NATS
func (g *PaymentGW) PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectOrderCreated, event)
}
