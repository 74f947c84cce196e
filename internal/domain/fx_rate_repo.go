package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type FXRateRepository interface {
	// SaveRateSample appends one rate observation.
	SaveRateSample(ctx context.Context, sample *FXRateSample) error

	// LatestRate returns the rate from the sample with the maximum
	// timestamp for the currency. If no sample exists yet it returns
	// parity (1.0) together with ErrNoRateSample so callers can record
	// the cold-start approximation.
	LatestRate(ctx context.Context, currency string) (decimal.Decimal, error)

	RatesInRange(ctx context.Context, currency string, from, to time.Time) ([]*FXRateSample, error)
}
