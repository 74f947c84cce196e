package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a raw payment event as produced by the generator.
// Immutable once published; TransactionID is globally unique.
type Transaction struct {
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	Country       string
	UserID        string
	Timestamp     time.Time
}

// NormalizedTransaction is the USD-converted counterpart of a Transaction,
// keyed by the same TransactionID. FXRate is the rate actually applied,
// expressed as currency units per USD.
type NormalizedTransaction struct {
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	AmountUSD     decimal.Decimal
	Country       string
	UserID        string
	FXRate        decimal.Decimal
	Timestamp     time.Time
}
