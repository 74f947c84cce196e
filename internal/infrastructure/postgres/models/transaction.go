package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionModel struct {
	ID            uint            `gorm:"primaryKey"`
	TransactionID string          `gorm:"size:50;uniqueIndex;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency      string          `gorm:"size:3;not null"`
	Country       string          `gorm:"size:50;not null"`
	UserID        string          `gorm:"size:50;not null"`
	Timestamp     time.Time       `gorm:"index:idx_transactions_timestamp;not null"`
	CreatedAt     time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
