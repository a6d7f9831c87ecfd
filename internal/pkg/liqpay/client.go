package liqpay

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/shopspring/decimal"
)

const (
	ActionPay = "pay"

	DefaultCheckoutURL = "https://www.liqpay.ua/api/3/checkout"
	DefaultVersion     = 3
)

var (
	// ErrNotConfigured is returned when merchant keys are missing
	ErrNotConfigured = errors.New("liqpay: merchant keys are not configured")
	// ErrInvalidSignature is returned when a callback signature does not match
	ErrInvalidSignature = errors.New("liqpay: invalid signature")
)

// CheckoutRequest is the payload encoded into the checkout form's data field
type CheckoutRequest struct {
	Version     int         `json:"version"`
	PublicKey   string      `json:"public_key"`
	Action      string      `json:"action"`
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	Description string      `json:"description"`
	OrderID     string      `json:"order_id"`
	Language    string      `json:"language,omitempty"`
	PayTypes    string      `json:"paytypes,omitempty"`
	ResultURL   string      `json:"result_url"`
	ServerURL   string      `json:"server_url"`
	Sandbox     int         `json:"sandbox,omitempty"`
}

// CallbackPayload holds the fields of a server callback this service reads
type CallbackPayload struct {
	OrderID        string          `json:"order_id"`
	Status         string          `json:"status"`
	Action         string          `json:"action,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency,omitempty"`
	PaymentID      json.Number     `json:"payment_id,omitempty"`
	LiqPayOrderID  string          `json:"liqpay_order_id,omitempty"`
	TransactionID  json.Number     `json:"transaction_id,omitempty"`
	ErrCode        string          `json:"err_code,omitempty"`
	ErrDescription string          `json:"err_description,omitempty"`
	PublicKey      string          `json:"public_key,omitempty"`
}

// Envelope is the signed form posted to the checkout page
type Envelope struct {
	Data      string
	Signature string
}

// Client signs checkout requests and verifies callbacks for one merchant
type Client struct {
	publicKey   string
	privateKey  string
	version     int
	checkoutURL string
	language    string
	payTypes    string
	sandbox     bool
}

// NewClient creates a client from configuration
func NewClient(cfg models.LiqPayConfig) *Client {
	c := &Client{
		publicKey:   cfg.PublicKey,
		privateKey:  cfg.PrivateKey,
		version:     cfg.Version,
		checkoutURL: cfg.CheckoutURL,
		language:    cfg.Language,
		payTypes:    cfg.PayTypes,
		sandbox:     cfg.Sandbox,
	}
	if c.version == 0 {
		c.version = DefaultVersion
	}
	if c.checkoutURL == "" {
		c.checkoutURL = DefaultCheckoutURL
	}
	return c
}

// Configured reports whether both keys are present
func (c *Client) Configured() bool {
	return c.publicKey != "" && c.privateKey != ""
}

// CanVerify reports whether callbacks can be verified
func (c *Client) CanVerify() bool {
	return c.privateKey != ""
}

// Sandbox reports whether the merchant runs in sandbox mode
func (c *Client) Sandbox() bool {
	return c.sandbox
}

// CheckoutURL returns the hosted checkout page address
func (c *Client) CheckoutURL() string {
	return c.checkoutURL
}

// NewCheckoutRequest fills in the merchant-level fields of a pay request
func (c *Client) NewCheckoutRequest(amount decimal.Decimal, currency, description, orderID, resultURL, serverURL string) CheckoutRequest {
	req := CheckoutRequest{
		Version:     c.version,
		PublicKey:   c.publicKey,
		Action:      ActionPay,
		Amount:      json.Number(amount.String()),
		Currency:    currency,
		Description: description,
		OrderID:     orderID,
		Language:    c.language,
		PayTypes:    c.payTypes,
		ResultURL:   resultURL,
		ServerURL:   serverURL,
	}
	if c.sandbox {
		req.Sandbox = 1
	}
	return req
}

// Envelope encodes and signs a checkout request
func (c *Client) Envelope(req CheckoutRequest) (Envelope, error) {
	if !c.Configured() {
		return Envelope{}, ErrNotConfigured
	}
	data, err := Encode(req)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Data: data, Signature: Sign(c.privateKey, data)}, nil
}

// VerifyCallback checks the signature and decodes the callback payload.
// The payload is never decoded when the signature does not match.
func (c *Client) VerifyCallback(data, signature string) (*CallbackPayload, error) {
	if !c.CanVerify() {
		return nil, ErrNotConfigured
	}
	if !Verify(c.privateKey, data, signature) {
		return nil, ErrInvalidSignature
	}

	var payload CallbackPayload
	if err := Decode(data, &payload); err != nil {
		return nil, err
	}
	payload.OrderID = strings.TrimSpace(payload.OrderID)
	return &payload, nil
}
