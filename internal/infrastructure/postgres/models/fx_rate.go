package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FXRateModel struct {
	ID        uint            `gorm:"primaryKey"`
	Currency  string          `gorm:"size:3;index:idx_fx_rates_currency_timestamp;not null"`
	RateToUSD decimal.Decimal `gorm:"type:numeric(10,6);not null"`
	Timestamp time.Time       `gorm:"index:idx_fx_rates_currency_timestamp;not null"`
	CreatedAt time.Time
}

func (FXRateModel) TableName() string {
	return "fx_rates"
}
