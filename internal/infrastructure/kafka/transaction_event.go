package publisher

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionEvent struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Country       string          `json:"country"`
	UserID        string          `json:"user_id"`
	Timestamp     time.Time       `json:"timestamp"`
}
