package interfaces

import (
	"context"

	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// DepositStore holds the deposits that may later enter the dispute
// lifecycle. Entries are never removed for the duration of a run.
type DepositStore interface {
	Save(ctx context.Context, tx models.TransactionID, deposit models.Deposit) error
	Get(tx models.TransactionID) (models.Deposit, bool)
	SetState(tx models.TransactionID, state models.DisputeState) error
}
