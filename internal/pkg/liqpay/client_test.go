package liqpay

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(sandbox bool) *Client {
	return NewClient(models.LiqPayConfig{
		PublicKey:  "sandbox_public",
		PrivateKey: "sandbox_private",
		Language:   "uk",
		Sandbox:    sandbox,
	})
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(models.LiqPayConfig{})

	assert.False(t, c.Configured())
	assert.False(t, c.CanVerify())
	assert.Equal(t, DefaultCheckoutURL, c.CheckoutURL())
	assert.Equal(t, DefaultVersion, c.version)
}

func TestEnvelope(t *testing.T) {
	c := testClient(false)
	req := c.NewCheckoutRequest(decimal.RequireFromString("500.00"), "UAH", "Order payment 42", "txn_1",
		"https://shop.example/checkout/confirm-order?payment=liqpay&order_id=txn_1", "https://api.example/api/payments/liqpay/callback")

	env, err := c.Envelope(req)
	require.NoError(t, err)
	assert.True(t, Verify("sandbox_private", env.Data, env.Signature))

	raw, err := base64.StdEncoding.DecodeString(env.Data)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, float64(3), fields["version"])
	assert.Equal(t, "sandbox_public", fields["public_key"])
	assert.Equal(t, "pay", fields["action"])
	assert.Equal(t, float64(500), fields["amount"])
	assert.Equal(t, "UAH", fields["currency"])
	assert.Equal(t, "txn_1", fields["order_id"])
	assert.Equal(t, "uk", fields["language"])
	assert.NotContains(t, fields, "sandbox")
	assert.NotContains(t, fields, "paytypes")
}

func TestEnvelopeSandboxFlag(t *testing.T) {
	c := testClient(true)
	req := c.NewCheckoutRequest(decimal.NewFromInt(1), "UAH", "d", "txn_1", "r", "s")

	assert.Equal(t, 1, req.Sandbox)
}

func TestEnvelopeNotConfigured(t *testing.T) {
	c := NewClient(models.LiqPayConfig{PrivateKey: "only-private"})

	_, err := c.Envelope(CheckoutRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerifyCallback(t *testing.T) {
	c := testClient(false)
	data, err := Encode(map[string]interface{}{
		"order_id": " txn_1 ",
		"status":   "success",
		"amount":   "500.00",
		"currency": "UAH",
	})
	require.NoError(t, err)

	payload, err := c.VerifyCallback(data, Sign("sandbox_private", data))
	require.NoError(t, err)
	assert.Equal(t, "txn_1", payload.OrderID)
	assert.Equal(t, "success", payload.Status)
	assert.True(t, payload.Amount.Equal(decimal.NewFromInt(500)))
}

func TestVerifyCallbackRejectsBadSignature(t *testing.T) {
	c := testClient(false)
	data, err := Encode(map[string]string{"order_id": "txn_1", "status": "success"})
	require.NoError(t, err)

	payload, err := c.VerifyCallback(data, Sign("wrong", data))
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyCallbackMalformed(t *testing.T) {
	c := testClient(false)
	data := base64.StdEncoding.EncodeToString([]byte("not json"))

	_, err := c.VerifyCallback(data, Sign("sandbox_private", data))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestVerifyCallbackWithoutKey(t *testing.T) {
	c := NewClient(models.LiqPayConfig{PublicKey: "pub"})

	_, err := c.VerifyCallback("data", "sig")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestMapStatus(t *testing.T) {
	tests := []struct {
		raw     string
		sandbox bool
		want    models.TransactionStatus
	}{
		{"success", false, models.TransactionStatusSucceeded},
		{"SUCCESS", false, models.TransactionStatusSucceeded},
		{" Success ", false, models.TransactionStatusSucceeded},
		{"sandbox", true, models.TransactionStatusSucceeded},
		{"sandbox", false, models.TransactionStatusPending},
		{"failure", false, models.TransactionStatusFailed},
		{"error", false, models.TransactionStatusFailed},
		{"reversed", false, models.TransactionStatusRefunded},
		{"refund", false, models.TransactionStatusRefunded},
		{"Refunded", false, models.TransactionStatusRefunded},
		{"expired", false, models.TransactionStatusExpired},
		{"processing", false, models.TransactionStatusPending},
		{"wait_accept", false, models.TransactionStatusPending},
		{"", false, models.TransactionStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatus(tt.raw, tt.sandbox))
		})
	}
}

func TestClientMapStatusUsesSandboxMode(t *testing.T) {
	assert.Equal(t, models.TransactionStatusSucceeded, testClient(true).MapStatus("sandbox"))
	assert.Equal(t, models.TransactionStatusPending, testClient(false).MapStatus("sandbox"))
}
