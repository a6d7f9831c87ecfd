package poller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/hatynka/storefront/internal/pkg/http"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmClient_ConfirmOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payments/liqpay/confirm-order", r.URL.Path)

		var req models.ConfirmOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "liqpay", req.Method)
		assert.Equal(t, "txn_1", req.AdditionalData.OrderID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ConfirmOrderResponse{Message: "Order confirmed", OrderID: "o-1", TransactionID: "t-1"})
	}))
	defer server.Close()

	client := NewConfirmClient(server.URL, time.Second)
	resp, err := client.ConfirmOrder(context.Background(), models.ConfirmOrderRequest{
		AdditionalData: models.ConfirmOrderData{OrderID: "txn_1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "o-1", resp.OrderID)
	assert.Equal(t, "t-1", resp.TransactionID)
}

func TestConfirmClient_NotConfirmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"error":"payment is not confirmed yet","kind":"not_confirmed","cause":"pending","code":409}`))
	}))
	defer server.Close()

	client := NewConfirmClient(server.URL, time.Second)
	_, err := client.ConfirmOrder(context.Background(), models.ConfirmOrderRequest{
		AdditionalData: models.ConfirmOrderData{OrderID: "txn_1"},
	})

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, "not_confirmed", httpErr.Kind)
	assert.Equal(t, "pending", httpErr.Cause)
	assert.Nil(t, permanentError(err))
}

func TestPoller_AgainstServer(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls < 3 {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"success":false,"error":"payment is not confirmed yet","kind":"not_confirmed","cause":"pending"}`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"Order confirmed","orderID":"o-9","transactionID":"t-9"}`))
	}))
	defer server.Close()

	clock := &fakeClock{now: start}
	p := New(Config{SiteURL: "https://shop.example"}, NewConfirmClient(server.URL, time.Second), ReturnParams{OrderID: "txn_9", Email: "a@b.com"}).
		WithClock(clock)

	result, err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "https://shop.example/orders/o-9?email=a%40b.com", result.RedirectURL)
	assert.Equal(t, 2*DefaultInterval, clock.elapsed())
}

func TestConfirmClient_GetTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/payments/transactions/txn_1", r.URL.Path)
		if r.Header.Get(httpclient.APIKeyHeader) != "support-key" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"Invalid API key","code":401}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Transaction retrieved successfully","data":{"gatewayOrderId":"txn_1","amount":"500","currency":"UAH","status":"succeeded","rawStatus":"success","orderId":"6f1c1b8e-5d1e-4c9a-9a57-2f0f3f6f2b11"}}`))
	}))
	defer server.Close()

	t.Run("with key", func(t *testing.T) {
		client := NewConfirmClient(server.URL, time.Second).WithAPIKey("support-key")

		txn, err := client.GetTransaction(context.Background(), "txn_1")

		require.NoError(t, err)
		assert.Equal(t, "txn_1", txn.GatewayOrderID)
		assert.Equal(t, models.TransactionStatusSucceeded, txn.Status)
		assert.Equal(t, "500", txn.Amount.String())
		require.True(t, txn.HasOrder())
		assert.Equal(t, "6f1c1b8e-5d1e-4c9a-9a57-2f0f3f6f2b11", txn.OrderID.String())
	})

	t.Run("without key", func(t *testing.T) {
		client := NewConfirmClient(server.URL, time.Second)

		_, err := client.GetTransaction(context.Background(), "txn_1")

		var httpErr *httpclient.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	})
}
