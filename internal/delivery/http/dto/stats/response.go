package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

type TotalRevenueResponse struct {
	TotalRevenueUSD decimal.Decimal `json:"total_revenue_usd"`
	Period          string          `json:"period"`
}

type RevenueBreakdownResponse struct {
	Key        string          `json:"key"`
	RevenueUSD decimal.Decimal `json:"revenue_usd"`
}

type HourlyActivityResponse struct {
	Hour             time.Time       `json:"hour"`
	TransactionCount int64           `json:"transaction_count"`
	RevenueUSD       decimal.Decimal `json:"revenue_usd"`
}

type SummaryResponse struct {
	TransactionCount  int64           `json:"transaction_count"`
	TotalRevenueUSD   decimal.Decimal `json:"total_revenue_usd"`
	DistinctUsers     int64           `json:"distinct_users"`
	DistinctCountries int64           `json:"distinct_countries"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
