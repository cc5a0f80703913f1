package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-engine/internal/storage/memory"
)

func newLedger() *Ledger {
	return NewLedger(memory.NewMemoryDepositStore())
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString(%q) error = %v", s, err)
	}
	return d
}

func TestRecordDepositRejectsDuplicateID(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	if err := l.RecordDeposit(ctx, 1, 1, dec(t, "5")); err != nil {
		t.Fatalf("RecordDeposit() error = %v", err)
	}
	err := l.RecordDeposit(ctx, 1, 1, dec(t, "7"))
	if !errors.Is(err, ErrDuplicateTransaction) {
		t.Fatalf("RecordDeposit() error = %v, want ErrDuplicateTransaction", err)
	}

	// The original entry must be untouched.
	amount, err := l.MarkDisputed(1, 1)
	if err != nil {
		t.Fatalf("MarkDisputed() error = %v", err)
	}
	if !amount.Equal(dec(t, "5")) {
		t.Fatalf("disputed amount = %v, want 5", amount)
	}
}

func TestDisputeResolveRoundTrip(t *testing.T) {
	l := newLedger()
	if err := l.RecordDeposit(context.Background(), 10, 2, dec(t, "3.5")); err != nil {
		t.Fatalf("RecordDeposit() error = %v", err)
	}

	if _, err := l.MarkDisputed(10, 2); err != nil {
		t.Fatalf("MarkDisputed() error = %v", err)
	}
	if _, err := l.MarkResolved(10, 2); err != nil {
		t.Fatalf("MarkResolved() error = %v", err)
	}
	// Back to Undisputed, so a second dispute works again.
	if _, err := l.MarkDisputed(10, 2); err != nil {
		t.Fatalf("MarkDisputed() after resolve error = %v", err)
	}
}

func TestChargedBackIsTerminal(t *testing.T) {
	l := newLedger()
	if err := l.RecordDeposit(context.Background(), 10, 2, dec(t, "3.5")); err != nil {
		t.Fatalf("RecordDeposit() error = %v", err)
	}
	if _, err := l.MarkDisputed(10, 2); err != nil {
		t.Fatalf("MarkDisputed() error = %v", err)
	}
	if _, err := l.MarkChargedBack(10, 2); err != nil {
		t.Fatalf("MarkChargedBack() error = %v", err)
	}

	if _, err := l.MarkDisputed(10, 2); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("MarkDisputed() after chargeback error = %v, want ErrInvalidState", err)
	}
	if _, err := l.MarkResolved(10, 2); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("MarkResolved() after chargeback error = %v, want ErrInvalidState", err)
	}
	if _, err := l.MarkChargedBack(10, 2); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("MarkChargedBack() after chargeback error = %v, want ErrInvalidState", err)
	}
}

func TestTransitionsRequireDisputeFirst(t *testing.T) {
	l := newLedger()
	if err := l.RecordDeposit(context.Background(), 1, 1, dec(t, "1")); err != nil {
		t.Fatalf("RecordDeposit() error = %v", err)
	}

	if _, err := l.MarkResolved(1, 1); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("MarkResolved() on undisputed error = %v, want ErrInvalidState", err)
	}
	if _, err := l.MarkChargedBack(1, 1); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("MarkChargedBack() on undisputed error = %v, want ErrInvalidState", err)
	}
}

func TestUnknownTransaction(t *testing.T) {
	l := newLedger()
	if _, err := l.MarkDisputed(99, 1); !errors.Is(err, ErrUnknownTransaction) {
		t.Fatalf("MarkDisputed() error = %v, want ErrUnknownTransaction", err)
	}
}

func TestClientMismatch(t *testing.T) {
	l := newLedger()
	if err := l.RecordDeposit(context.Background(), 7, 1, dec(t, "2")); err != nil {
		t.Fatalf("RecordDeposit() error = %v", err)
	}
	if _, err := l.MarkDisputed(7, 2); !errors.Is(err, ErrClientMismatch) {
		t.Fatalf("MarkDisputed() error = %v, want ErrClientMismatch", err)
	}
	// The failed dispute must not have changed the state.
	if _, err := l.MarkDisputed(7, 1); err != nil {
		t.Fatalf("MarkDisputed() by owner error = %v", err)
	}
}

func TestDoubleDispute(t *testing.T) {
	l := newLedger()
	if err := l.RecordDeposit(context.Background(), 1, 1, dec(t, "1")); err != nil {
		t.Fatalf("RecordDeposit() error = %v", err)
	}
	if _, err := l.MarkDisputed(1, 1); err != nil {
		t.Fatalf("MarkDisputed() error = %v", err)
	}
	if _, err := l.MarkDisputed(1, 1); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second MarkDisputed() error = %v, want ErrInvalidState", err)
	}
}

func TestLedgerIgnoresAmountOnTransitions(t *testing.T) {
	l := newLedger()
	if err := l.RecordDeposit(context.Background(), 1, 1, decimal.Zero); err != nil {
		t.Fatalf("RecordDeposit() error = %v", err)
	}
	amount, err := l.MarkDisputed(1, 1)
	if err != nil {
		t.Fatalf("MarkDisputed() error = %v", err)
	}
	if !amount.Equal(decimal.Zero) {
		t.Fatalf("amount = %v, want 0", amount)
	}
}
