package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FXRateSample is one observation of a currency's rate to USD
// (currency units per USD). Samples accumulate over time, one row per
// observation, no uniqueness constraint.
type FXRateSample struct {
	Currency  string
	RateToUSD decimal.Decimal
	Timestamp time.Time
}
