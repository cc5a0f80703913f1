package ledger

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces"
	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// Failure modes of ledger operations. All of them are client errors: the
// referencing transaction is dropped and the run continues.
var (
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrUnknownTransaction   = errors.New("unknown transaction id")
	ErrClientMismatch       = errors.New("transaction belongs to another client")
	ErrInvalidState         = errors.New("invalid dispute state for transition")
)

// Ledger is the source of truth for what can be disputed, resolved or
// charged back. It tracks every deposit of the run and enforces the dispute
// state machine:
//
//	Undisputed --dispute--> Disputed --resolve--> Undisputed
//	Disputed --chargeback--> ChargedBack (terminal)
//
// The ledger only checks identity and state; it never rejects on amount.
type Ledger struct {
	store interfaces.DepositStore
}

// NewLedger creates a ledger on top of a deposit store.
func NewLedger(store interfaces.DepositStore) *Ledger {
	return &Ledger{store: store}
}

// RecordDeposit inserts a new deposit in state Undisputed. Transaction ids
// are unique across the whole run; a reused id fails with
// ErrDuplicateTransaction and leaves the existing entry untouched.
func (l *Ledger) RecordDeposit(ctx context.Context, tx models.TransactionID, client models.ClientID, amount decimal.Decimal) error {
	if _, exists := l.store.Get(tx); exists {
		return ErrDuplicateTransaction
	}
	return l.store.Save(ctx, tx, models.Deposit{
		Client: client,
		Amount: amount,
		State:  models.Undisputed,
	})
}

// MarkDisputed moves an undisputed deposit into dispute and returns its
// amount so the caller can shift funds from available to held.
func (l *Ledger) MarkDisputed(tx models.TransactionID, client models.ClientID) (decimal.Decimal, error) {
	return l.transition(tx, client, models.Undisputed, models.Disputed)
}

// MarkResolved takes a disputed deposit back to Undisputed and returns its
// amount so the caller can release the held funds.
func (l *Ledger) MarkResolved(tx models.TransactionID, client models.ClientID) (decimal.Decimal, error) {
	return l.transition(tx, client, models.Disputed, models.Undisputed)
}

// MarkChargedBack moves a disputed deposit to ChargedBack. There is no
// transition out of ChargedBack; later disputes of the same id fail with
// ErrInvalidState.
func (l *Ledger) MarkChargedBack(tx models.TransactionID, client models.ClientID) (decimal.Decimal, error) {
	return l.transition(tx, client, models.Disputed, models.ChargedBack)
}

func (l *Ledger) transition(tx models.TransactionID, client models.ClientID, from, to models.DisputeState) (decimal.Decimal, error) {
	deposit, ok := l.store.Get(tx)
	if !ok {
		return decimal.Zero, ErrUnknownTransaction
	}
	if deposit.Client != client {
		return decimal.Zero, ErrClientMismatch
	}
	if deposit.State != from {
		return decimal.Zero, ErrInvalidState
	}
	if err := l.store.SetState(tx, to); err != nil {
		return decimal.Zero, err
	}
	return deposit.Amount, nil
}
