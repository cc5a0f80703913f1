package memory

import (
	"context"
	"fmt"
	"sync"

	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces"
	"github.com/sheikh-saqib/payments-engine/internal/models"
)

// MemoryDepositStore is an in-memory implementation of interfaces.DepositStore.
// It is the only store of the engine: state lives for one run and is gone
// when the process exits.
type MemoryDepositStore struct {
	mu       sync.Mutex
	deposits map[models.TransactionID]models.Deposit
}

// NewMemoryDepositStore creates an empty store.
func NewMemoryDepositStore() *MemoryDepositStore {
	return &MemoryDepositStore{
		deposits: make(map[models.TransactionID]models.Deposit),
	}
}

// Save stores the deposit under its transaction id, overwriting any
// previous entry. Duplicate detection is the ledger's job, not the store's.
func (m *MemoryDepositStore) Save(ctx context.Context, tx models.TransactionID, deposit models.Deposit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deposits[tx] = deposit
	return nil
}

// Get returns the deposit recorded under tx, if any.
func (m *MemoryDepositStore) Get(tx models.TransactionID) (models.Deposit, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deposit, ok := m.deposits[tx]
	return deposit, ok
}

// SetState updates the dispute state of an existing deposit.
func (m *MemoryDepositStore) SetState(tx models.TransactionID, state models.DisputeState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	deposit, ok := m.deposits[tx]
	if !ok {
		return fmt.Errorf("deposit %d not found", tx)
	}
	deposit.State = state
	m.deposits[tx] = deposit
	return nil
}

// Deposits returns a copy of every stored deposit so external code can't
// modify internal state. Useful for testing and debugging.
func (m *MemoryDepositStore) Deposits() map[models.TransactionID]models.Deposit {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make(map[models.TransactionID]models.Deposit, len(m.deposits))
	for tx, deposit := range m.deposits {
		copied[tx] = deposit
	}
	return copied
}

// Compile-time check: ensure MemoryDepositStore implements DepositStore interface
var _ interfaces.DepositStore = (*MemoryDepositStore)(nil)
