package liqpay

import (
	"strings"

	"github.com/hatynka/storefront/internal/pkg/models"
)

// Raw statuses sent by the gateway
const (
	StatusSuccess  = "success"
	StatusSandbox  = "sandbox"
	StatusFailure  = "failure"
	StatusError    = "error"
	StatusReversed = "reversed"
	StatusRefund   = "refund"
	StatusRefunded = "refunded"
	StatusExpired  = "expired"
)

// MapStatus maps a raw gateway status to a transaction status, ignoring case.
// "sandbox" counts as a success only when sandboxMode is set; in production
// it stays pending. Unknown statuses are pending.
func MapStatus(raw string, sandboxMode bool) models.TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StatusSuccess:
		return models.TransactionStatusSucceeded
	case StatusSandbox:
		if sandboxMode {
			return models.TransactionStatusSucceeded
		}
		return models.TransactionStatusPending
	case StatusFailure, StatusError:
		return models.TransactionStatusFailed
	case StatusReversed, StatusRefund, StatusRefunded:
		return models.TransactionStatusRefunded
	case StatusExpired:
		return models.TransactionStatusExpired
	default:
		return models.TransactionStatusPending
	}
}

// MapStatus maps raw using the client's sandbox mode
func (c *Client) MapStatus(raw string) models.TransactionStatus {
	return MapStatus(raw, c.sandbox)
}
