package models

import "github.com/shopspring/decimal"

// ClientID identifies an account holder.
type ClientID uint16

// TransactionID identifies a single transaction, unique across the whole run.
type TransactionID uint32

// TransactionType is the kind of an input record.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeDispute    TransactionType = "dispute"
	TypeResolve    TransactionType = "resolve"
	TypeChargeback TransactionType = "chargeback"
)

// Transaction is one record from the input log. Amount is set only for
// deposits and withdrawals; dispute, resolve and chargeback carry no amount
// and reference a prior transaction through Tx instead.
type Transaction struct {
	Type   TransactionType
	Client ClientID
	Tx     TransactionID
	Amount *decimal.Decimal
}
