package generator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRatesCoversNonUSDCurrencies(t *testing.T) {
	gen := NewFXRateGenerator()

	samples := gen.GenerateRates()
	require.Len(t, samples, len(currencies)-1)

	seen := make(map[string]struct{})
	for _, s := range samples {
		assert.NotEqual(t, "USD", s.Currency)
		assert.False(t, s.Timestamp.IsZero())
		seen[s.Currency] = struct{}{}
	}
	assert.Len(t, seen, len(currencies)-1)
}

func TestGenerateRatesWithinFluctuationBounds(t *testing.T) {
	gen := NewFXRateGenerator()

	// Samples are rounded to six decimals, allow one rounding unit of slack
	slack := decimal.New(1, -6)
	for i := 0; i < 100; i++ {
		for _, s := range gen.GenerateRates() {
			base := decimal.NewFromFloat(baseRates[s.Currency])
			low := base.Mul(decimal.NewFromFloat(1 - maxFluctuation)).Sub(slack)
			high := base.Mul(decimal.NewFromFloat(1 + maxFluctuation)).Add(slack)

			assert.True(t, s.RateToUSD.GreaterThanOrEqual(low),
				"%s rate %s under lower bound %s", s.Currency, s.RateToUSD, low)
			assert.True(t, s.RateToUSD.LessThanOrEqual(high),
				"%s rate %s over upper bound %s", s.Currency, s.RateToUSD, high)
			assert.True(t, s.RateToUSD.IsPositive())
		}
	}
}
