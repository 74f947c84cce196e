package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessedTransactionModel holds the USD-normalized copy of a transaction.
// Exactly one row per transaction_id.
type ProcessedTransactionModel struct {
	ID            uint            `gorm:"primaryKey"`
	TransactionID string          `gorm:"size:50;uniqueIndex;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency      string          `gorm:"size:3;not null"`
	AmountUSD     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Country       string          `gorm:"size:50;index:idx_processed_country;not null"`
	UserID        string          `gorm:"size:50;index:idx_processed_user;not null"`
	FXRate        decimal.Decimal `gorm:"type:numeric(10,6);not null"`
	Timestamp     time.Time       `gorm:"index:idx_processed_timestamp;not null"`
	ProcessedAt   time.Time       `gorm:"autoCreateTime"`
}

func (ProcessedTransactionModel) TableName() string {
	return "processed_transactions"
}
