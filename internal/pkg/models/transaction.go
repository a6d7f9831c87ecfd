package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a payment attempt
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSucceeded TransactionStatus = "succeeded"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
	TransactionStatusExpired   TransactionStatus = "expired"
)

// IsTerminal reports whether the gateway has finished with the payment
func (s TransactionStatus) IsTerminal() bool {
	return s != TransactionStatusPending
}

// CanTransitionTo reports whether a stored status may be replaced by next.
// Terminal statuses are frozen, except that a succeeded payment may still
// be reversed by the gateway.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s == next {
		return false
	}
	if s == TransactionStatusSucceeded {
		return next == TransactionStatusRefunded
	}
	return !s.IsTerminal()
}

// PaymentMethodLiqPay is the only payment method this service signs for
const PaymentMethodLiqPay = "liqpay"

// LineItem is a frozen cart line; nested product/variant objects are reduced to ids
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	VariantID string `json:"variantId,omitempty"`
}

// LineItems is stored as JSONB
type LineItems []LineItem

// Value implements driver.Valuer
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *LineItems) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// Address is a free-form address snapshot stored as JSONB
type Address map[string]interface{}

// Value implements driver.Valuer
func (a Address) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *Address) Scan(src interface{}) error {
	return scanJSON(src, a)
}

// LiqPayDetails is the gateway-specific sub-object kept on a transaction
type LiqPayDetails struct {
	OrderID         string  `json:"orderId"`
	ShippingAddress Address `json:"shippingAddress,omitempty"`
}

// Value implements driver.Valuer
func (d LiqPayDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner
func (d *LiqPayDetails) Scan(src interface{}) error {
	return scanJSON(src, d)
}

// Transaction represents one payment attempt against the gateway
type Transaction struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	GatewayOrderID  string            `json:"gatewayOrderId" db:"gateway_order_id"`
	Amount          decimal.Decimal   `json:"amount" db:"amount"`
	Currency        string            `json:"currency" db:"currency"`
	Status          TransactionStatus `json:"status" db:"status"`
	RawStatus       string            `json:"rawStatus,omitempty" db:"raw_status"`
	PaymentMethod   string            `json:"paymentMethod" db:"payment_method"`
	CustomerID      *uuid.UUID        `json:"customerId,omitempty" db:"customer_id"`
	CustomerEmail   *string           `json:"customerEmail,omitempty" db:"customer_email"`
	Items           LineItems         `json:"items" db:"items"`
	ShippingAddress Address           `json:"shippingAddress,omitempty" db:"shipping_address"`
	CartID          *string           `json:"cartId,omitempty" db:"cart_id"`
	LiqPay          LiqPayDetails     `json:"liqpay" db:"liqpay"`
	OrderID         *uuid.UUID        `json:"orderId,omitempty" db:"order_id"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

// HasOrder reports whether an order was already attached
func (t *Transaction) HasOrder() bool {
	return t.OrderID != nil && *t.OrderID != uuid.Nil
}

// Email returns the stored guest email, or an empty string
func (t *Transaction) Email() string {
	if t.CustomerEmail == nil {
		return ""
	}
	return *t.CustomerEmail
}

func scanJSON(src interface{}, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
}
