package models

import "github.com/shopspring/decimal"

// AccountSummary is one row of the final per-client report. Total is always
// derived as Available+Held, never stored independently.
type AccountSummary struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}
