package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEvent is published when a transaction is created or its status changes
type TransactionEvent struct {
	TransactionID  string            `json:"transaction_id"`
	GatewayOrderID string            `json:"gateway_order_id"`
	Status         TransactionStatus `json:"status"`
	RawStatus      string            `json:"raw_status,omitempty"`
	Amount         decimal.Decimal   `json:"amount"`
	Currency       string            `json:"currency"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

// OrderCreatedEvent is published once per order
type OrderCreatedEvent struct {
	OrderID        string          `json:"order_id"`
	TransactionID  string          `json:"transaction_id"`
	GatewayOrderID string          `json:"gateway_order_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	CustomerEmail  string          `json:"customer_email,omitempty"`
	Items          LineItems       `json:"items"`
	CreatedBy      string          `json:"created_by"`
	OccurredAt     time.Time       `json:"occurred_at"`
}
