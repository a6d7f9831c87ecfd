package constants

// Redis key formats
const (
	KeyTransactionOrderLock = "lock:transaction:order:%s" // Format: lock:transaction:order:{transaction_id}
)
