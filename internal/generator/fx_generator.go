package generator

import (
	"math/rand"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/shopspring/decimal"
)

// maxFluctuation bounds the symmetric random drift applied to base rates.
const maxFluctuation = 0.02

// FXRateGenerator produces one rate sample per non-USD currency around the
// base-rate table.
type FXRateGenerator struct {
	rng *rand.Rand
}

func NewFXRateGenerator() *FXRateGenerator {
	return &FXRateGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *FXRateGenerator) GenerateRates() []*domain.FXRateSample {
	now := time.Now().UTC()
	samples := make([]*domain.FXRateSample, 0, len(currencies)-1)
	for _, currency := range currencies {
		if currency == "USD" {
			continue
		}
		fluctuation := -maxFluctuation + g.rng.Float64()*2*maxFluctuation
		rate := baseRates[currency] * (1 + fluctuation)
		samples = append(samples, &domain.FXRateSample{
			Currency:  currency,
			RateToUSD: decimal.NewFromFloat(rate).Round(6),
			Timestamp: now,
		})
	}
	return samples
}
