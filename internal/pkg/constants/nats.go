package constants

// NATS Subjects
const (
	SubjectTransactionCreated = "payments.transaction.created"
	SubjectTransactionStatus  = "payments.transaction.status"
	SubjectOrderCreated       = "orders.created"
)
