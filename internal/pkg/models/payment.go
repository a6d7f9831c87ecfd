package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ref is a CMS reference that may arrive either as a bare id or as a
// populated object carrying an "id" field. It always holds the id.
type Ref string

// UnmarshalJSON accepts a string, a number or an object with an id
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Ref(strings.TrimSpace(s))
		return nil
	case '{':
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if len(obj.ID) == 0 {
			*r = ""
			return nil
		}
		return r.UnmarshalJSON(obj.ID)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unsupported reference value %s", string(data))
		}
		*r = Ref(n.String())
		return nil
	}
}

// String returns the referenced id
func (r Ref) String() string {
	return string(r)
}

// CartItemSnapshot is one line of the client-side cart snapshot
type CartItemSnapshot struct {
	Product  Ref   `json:"product"`
	Variant  Ref   `json:"variant,omitempty"`
	Quantity int   `json:"quantity"`
	InStock  *bool `json:"inStock,omitempty"`
}

// CartSnapshot is the cart as the client saw it when starting checkout
type CartSnapshot struct {
	ID       Ref                `json:"id"`
	Subtotal *decimal.Decimal   `json:"subtotal"`
	Items    []CartItemSnapshot `json:"items"`
}

// LineItems flattens the snapshot into the shape stored on a transaction
func (c *CartSnapshot) LineItems() LineItems {
	items := make(LineItems, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, LineItem{
			ProductID: item.Product.String(),
			Quantity:  item.Quantity,
			VariantID: item.Variant.String(),
		})
	}
	return items
}

// InitiatePaymentData is the LiqPay-specific additional data sent with an initiation
type InitiatePaymentData struct {
	Currency        string        `json:"currency"`
	Cart            *CartSnapshot `json:"cart"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	BillingAddress  Address       `json:"billingAddress,omitempty"`
	ShippingAddress Address       `json:"shippingAddress,omitempty"`
}

// InitiatePaymentRequest starts a payment for the caller's cart
type InitiatePaymentRequest struct {
	Method         string              `json:"method"`
	AdditionalData InitiatePaymentData `json:"additionalData"`

	// CustomerID is resolved from the session, never from the body
	CustomerID *uuid.UUID `json:"-"`
}

// InitiatePaymentResponse is the signed redirect envelope returned to the client
type InitiatePaymentResponse struct {
	CheckoutURL   string `json:"checkoutURL"`
	Data          string `json:"data"`
	Signature     string `json:"signature"`
	OrderID       string `json:"orderID"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionID"`
}

// CallbackRequest is the form body the gateway posts to the webhook
type CallbackRequest struct {
	Data      string `form:"data"`
	Signature string `form:"signature"`
}

// ConfirmOrderData carries the gateway order reference to confirm
type ConfirmOrderData struct {
	OrderID       string `json:"orderID"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// ConfirmOrderRequest is the RPC body sent by the confirmation poller
type ConfirmOrderRequest struct {
	Method         string           `json:"method"`
	AdditionalData ConfirmOrderData `json:"additionalData"`
}

// ConfirmOrderResponse is returned once an order exists for the transaction
type ConfirmOrderResponse struct {
	Message       string `json:"message"`
	OrderID       string `json:"orderID"`
	TransactionID string `json:"transactionID"`
}
