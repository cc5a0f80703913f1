package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Topics the account book publishes to.
const (
	TopicTransactionApplied  = "transaction_applied"
	TopicTransactionRejected = "transaction_rejected"
)

// TransactionApplied is emitted after a record mutated a client's balances.
type TransactionApplied struct {
	RunID      string           `json:"run_id"`
	Type       string           `json:"type"`
	Client     uint16           `json:"client"`
	Tx         uint32           `json:"tx"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// TransactionRejected is emitted when a record was dropped by the core.
// Dropped records are not an error for the run; the event is the only trace.
type TransactionRejected struct {
	RunID      string    `json:"run_id"`
	Type       string    `json:"type"`
	Client     uint16    `json:"client"`
	Tx         uint32    `json:"tx"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
