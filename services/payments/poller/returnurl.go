package poller

import (
	"fmt"
	"net/url"
	"strings"
)

// orderIDParams are the query keys the storefront has used for the gateway
// order reference, in order of preference
var orderIDParams = []string{"order_id", "orderID", "liqpay_order_id"}

// ReturnParams is what the checkout result page needs to confirm an order
type ReturnParams struct {
	OrderID string
	Email   string
}

// ParseReturnURL extracts the order reference and email from the URL the
// gateway redirected the customer to. A bare query string is accepted too.
func ParseReturnURL(raw string) (ReturnParams, error) {
	raw = strings.TrimSpace(raw)

	var query url.Values
	if !strings.HasPrefix(raw, "?") && (strings.Contains(raw, "?") || strings.Contains(raw, "://")) {
		u, err := url.Parse(raw)
		if err != nil {
			return ReturnParams{}, fmt.Errorf("invalid return url: %w", err)
		}
		query = u.Query()
	} else {
		q, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
		if err != nil {
			return ReturnParams{}, fmt.Errorf("invalid return query: %w", err)
		}
		query = q
	}

	var params ReturnParams
	for _, key := range orderIDParams {
		if v := strings.TrimSpace(query.Get(key)); v != "" {
			params.OrderID = v
			break
		}
	}
	params.Email = strings.TrimSpace(query.Get("email"))
	return params, nil
}
