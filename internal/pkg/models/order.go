package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
)

// Order is the commercial record of a completed purchase
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Currency        string          `json:"currency" db:"currency"`
	CustomerID      *uuid.UUID      `json:"customerId,omitempty" db:"customer_id"`
	CustomerEmail   *string         `json:"customerEmail,omitempty" db:"customer_email"`
	Items           LineItems       `json:"items" db:"items"`
	ShippingAddress Address         `json:"shippingAddress,omitempty" db:"shipping_address"`
	Status          OrderStatus     `json:"status" db:"status"`
	TransactionID   uuid.UUID       `json:"transactionId" db:"transaction_id"`
	Transactions    pq.StringArray  `json:"transactions" db:"transactions"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}

// NewOrderFromTransaction copies the frozen transaction snapshot into a new
// processing order. Exactly one of customer id or email is carried over.
func NewOrderFromTransaction(txn *Transaction) *Order {
	order := &Order{
		ID:              uuid.New(),
		Amount:          txn.Amount,
		Currency:        txn.Currency,
		Items:           txn.Items,
		ShippingAddress: txn.ShippingAddress,
		Status:          OrderStatusProcessing,
		TransactionID:   txn.ID,
		Transactions:    pq.StringArray{txn.ID.String()},
		CreatedAt:       time.Now(),
	}

	if txn.CustomerID != nil {
		customerID := *txn.CustomerID
		order.CustomerID = &customerID
	} else if txn.CustomerEmail != nil {
		email := *txn.CustomerEmail
		order.CustomerEmail = &email
	}

	return order
}

// Cart is the collaborator entity stamped once an order is created
type Cart struct {
	ID          string     `json:"id" db:"id"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty" db:"purchased_at"`
}
