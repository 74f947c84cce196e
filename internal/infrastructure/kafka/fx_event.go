package publisher

import (
	"time"

	"github.com/shopspring/decimal"
)

type FXRateEvent struct {
	Currency  string          `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	Timestamp time.Time       `json:"timestamp"`
}
