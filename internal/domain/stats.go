package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueBreakdown is USD revenue attributed to one value of a grouping
// dimension (country, currency or user).
type RevenueBreakdown struct {
	Key        string
	RevenueUSD decimal.Decimal
}

type HourlyActivity struct {
	Hour             time.Time
	TransactionCount int64
	RevenueUSD       decimal.Decimal
}

type SummaryStats struct {
	TransactionCount  int64
	TotalRevenueUSD   decimal.Decimal
	DistinctUsers     int64
	DistinctCountries int64
}

// StatisticsSource serves aggregate reads over normalized transactions for
// the dashboard and API collaborators. Implementations exist for direct
// database access and for a remote stats API; callers pick one, the
// queries behave the same. All methods are pure reads over a trailing
// time window ending now.
type StatisticsSource interface {
	TotalRevenue(ctx context.Context, window time.Duration) (decimal.Decimal, error)
	RevenueByCountry(ctx context.Context, window time.Duration) ([]RevenueBreakdown, error)
	RevenueByCurrency(ctx context.Context, window time.Duration) ([]RevenueBreakdown, error)
	RevenueByUser(ctx context.Context, window time.Duration) ([]RevenueBreakdown, error)
	HourlyActivity(ctx context.Context, window time.Duration) ([]HourlyActivity, error)
	Summary(ctx context.Context, window time.Duration) (*SummaryStats, error)
}
