package poller

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/hatynka/storefront/internal/pkg/http"
	"github.com/hatynka/storefront/internal/pkg/models"
)

// ConfirmClient calls the confirm-order RPC of a deployed payments service
type ConfirmClient struct {
	client *httpclient.Client
}

// NewConfirmClient creates a client for the service at baseURL
func NewConfirmClient(baseURL string, timeout time.Duration) *ConfirmClient {
	return &ConfirmClient{
		client: httpclient.NewClient(baseURL, timeout),
	}
}

// WithAPIKey sets the support key required by GetTransaction
func (c *ConfirmClient) WithAPIKey(key string) *ConfirmClient {
	c.client.WithAPIKey(key)
	return c
}

// ConfirmOrder posts req and returns the confirmed order. Non-2xx responses
// come back as *httpclient.HTTPError.
func (c *ConfirmClient) ConfirmOrder(ctx context.Context, req models.ConfirmOrderRequest) (*models.ConfirmOrderResponse, error) {
	if req.Method == "" {
		req.Method = models.PaymentMethodLiqPay
	}

	var resp models.ConfirmOrderResponse
	endpoint := fmt.Sprintf("/api/payments/%s/confirm-order", req.Method)
	if err := c.client.PostJSON(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTransaction fetches the stored transaction for a gateway order reference
// from the support endpoint
func (c *ConfirmClient) GetTransaction(ctx context.Context, gatewayOrderID string) (*models.Transaction, error) {
	var envelope struct {
		Data models.Transaction `json:"data"`
	}
	if err := c.client.GetJSON(ctx, "/api/payments/transactions/"+url.PathEscape(gatewayOrderID), &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
