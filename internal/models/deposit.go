package models

import "github.com/shopspring/decimal"

// DisputeState is where a deposit sits in the dispute lifecycle.
// ChargedBack is terminal; there is no transition out of it.
type DisputeState string

const (
	Undisputed  DisputeState = "undisputed"
	Disputed    DisputeState = "disputed"
	ChargedBack DisputeState = "charged_back"
)

// Deposit is the ledger's record of a deposit that may later be disputed.
// Withdrawals are never retained; only deposits are disputable.
type Deposit struct {
	Client ClientID
	Amount decimal.Decimal
	State  DisputeState
}
