package accountbook

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces"
	"github.com/sheikh-saqib/payments-engine/internal/ledger"
	"github.com/sheikh-saqib/payments-engine/internal/models"
	"github.com/sheikh-saqib/payments-engine/internal/models/events"
)

var (
	errMissingAmount     = errors.New("amount required")
	errNonPositiveAmount = errors.New("amount must be positive")
	errAccountLocked     = errors.New("account locked")
	errInsufficientFunds = errors.New("insufficient funds")
)

// account is the mutable balance state for one client. The total is always
// derived as available+held, never stored, so the two can't drift apart.
type account struct {
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
}

// AccountBook applies transactions to per-client balances in arrival order,
// consulting the ledger for the dispute lifecycle. Accounts are created
// lazily on first reference. Transaction-level failures are dropped and
// published as rejection events; they never abort the run.
type AccountBook struct {
	ledger    *ledger.Ledger
	publisher interfaces.EventPublisher
	runID     string
	accounts  map[models.ClientID]*account
}

// NewAccountBook creates an empty account book. The publisher may be nil
// when no audit trail is wanted.
func NewAccountBook(l *ledger.Ledger, publisher interfaces.EventPublisher, runID string) *AccountBook {
	return &AccountBook{
		ledger:    l,
		publisher: publisher,
		runID:     runID,
		accounts:  make(map[models.ClientID]*account),
	}
}

// Apply processes a single transaction. Errors inside the core are
// swallowed: the offending record is dropped, a rejection event is
// published, and the caller moves on to the next record.
func (b *AccountBook) Apply(ctx context.Context, tx models.Transaction) {
	if err := b.apply(ctx, tx); err != nil {
		log.Debug().
			Err(err).
			Str("run_id", b.runID).
			Str("type", string(tx.Type)).
			Uint16("client", uint16(tx.Client)).
			Uint32("tx", uint32(tx.Tx)).
			Msg("transaction dropped")
		b.publish(events.TopicTransactionRejected, events.TransactionRejected{
			RunID:      b.runID,
			Type:       string(tx.Type),
			Client:     uint16(tx.Client),
			Tx:         uint32(tx.Tx),
			Reason:     err.Error(),
			OccurredAt: time.Now().UTC(),
		})
		return
	}
	b.publish(events.TopicTransactionApplied, events.TransactionApplied{
		RunID:      b.runID,
		Type:       string(tx.Type),
		Client:     uint16(tx.Client),
		Tx:         uint32(tx.Tx),
		Amount:     tx.Amount,
		OccurredAt: time.Now().UTC(),
	})
}

func (b *AccountBook) apply(ctx context.Context, tx models.Transaction) error {
	acct := b.account(tx.Client)
	switch tx.Type {
	case models.TypeDeposit:
		return b.deposit(ctx, acct, tx)
	case models.TypeWithdrawal:
		return b.withdraw(acct, tx)
	case models.TypeDispute:
		return b.dispute(acct, tx)
	case models.TypeResolve:
		return b.resolve(acct, tx)
	case models.TypeChargeback:
		return b.chargeback(acct, tx)
	default:
		return fmt.Errorf("unknown transaction type %q", tx.Type)
	}
}

func (b *AccountBook) account(client models.ClientID) *account {
	acct, ok := b.accounts[client]
	if !ok {
		acct = &account{available: decimal.Zero, held: decimal.Zero}
		b.accounts[client] = acct
	}
	return acct
}

func (b *AccountBook) deposit(ctx context.Context, acct *account, tx models.Transaction) error {
	amount, err := requireAmount(tx)
	if err != nil {
		return err
	}
	if acct.locked {
		return errAccountLocked
	}
	// Validate before mutate: the balance only moves if the ledger accepted
	// the entry, so a duplicate id leaves ledger and balances untouched.
	if err := b.ledger.RecordDeposit(ctx, tx.Tx, tx.Client, amount); err != nil {
		return err
	}
	acct.available = acct.available.Add(amount)
	return nil
}

// Withdrawals are never recorded in the ledger; they cannot be disputed.
func (b *AccountBook) withdraw(acct *account, tx models.Transaction) error {
	amount, err := requireAmount(tx)
	if err != nil {
		return err
	}
	if acct.locked {
		return errAccountLocked
	}
	if acct.available.LessThan(amount) {
		return errInsufficientFunds
	}
	acct.available = acct.available.Sub(amount)
	return nil
}

// Dispute-family records are not gated by the lock: the ledger decides,
// even after a chargeback froze the account.
func (b *AccountBook) dispute(acct *account, tx models.Transaction) error {
	amount, err := b.ledger.MarkDisputed(tx.Tx, tx.Client)
	if err != nil {
		return err
	}
	// No floor check: a dispute may drive available negative.
	acct.available = acct.available.Sub(amount)
	acct.held = acct.held.Add(amount)
	return nil
}

func (b *AccountBook) resolve(acct *account, tx models.Transaction) error {
	amount, err := b.ledger.MarkResolved(tx.Tx, tx.Client)
	if err != nil {
		return err
	}
	acct.held = acct.held.Sub(amount)
	acct.available = acct.available.Add(amount)
	return nil
}

func (b *AccountBook) chargeback(acct *account, tx models.Transaction) error {
	amount, err := b.ledger.MarkChargedBack(tx.Tx, tx.Client)
	if err != nil {
		return err
	}
	acct.held = acct.held.Sub(amount)
	acct.locked = true
	return nil
}

func requireAmount(tx models.Transaction) (decimal.Decimal, error) {
	if tx.Amount == nil {
		return decimal.Zero, errMissingAmount
	}
	if tx.Amount.Cmp(decimal.Zero) <= 0 {
		return decimal.Zero, errNonPositiveAmount
	}
	return *tx.Amount, nil
}

func (b *AccountBook) publish(topic string, event any) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.Publish(topic, event); err != nil {
		log.Warn().Err(err).Str("run_id", b.runID).Str("topic", topic).Msg("event publish failed")
	}
}

// Summaries returns the final per-client report, sorted by client id for
// predictable output.
func (b *AccountBook) Summaries() []models.AccountSummary {
	summaries := make([]models.AccountSummary, 0, len(b.accounts))
	for client, acct := range b.accounts {
		summaries = append(summaries, models.AccountSummary{
			Client:    client,
			Available: acct.available,
			Held:      acct.held,
			Total:     acct.available.Add(acct.held),
			Locked:    acct.locked,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Client < summaries[j].Client })
	return summaries
}
