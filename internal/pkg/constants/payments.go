package constants

import "time"

// Gateway order references
const (
	GatewayOrderPrefix = "txn_"
)

// RawStatusMaxLength matches the transactions.raw_status column
const RawStatusMaxLength = 64

// Order creators recorded on orders.created events
const (
	CreatedByCallback = "callback"
	CreatedByConfirm  = "confirm-order"
)

// Context keys set by the HTTP middleware
const (
	ContextCustomerID = "customer_id"
)

// Rate limit for the confirm-order RPC, per client IP
const (
	ConfirmOrderRateLimit  = 60
	ConfirmOrderRatePeriod = time.Minute
)
