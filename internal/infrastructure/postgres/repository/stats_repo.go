package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultStatsRepository is the direct-database StatisticsSource. Queries
// read a consistent-as-of-now snapshot and run concurrently with pipeline
// writes.
type DefaultStatsRepository struct {
	DB *gorm.DB
}

func NewDefaultStatsRepository(db *gorm.DB) *DefaultStatsRepository {
	return &DefaultStatsRepository{DB: db}
}

func (r *DefaultStatsRepository) TotalRevenue(ctx context.Context, window time.Duration) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	row := r.DB.WithContext(ctx).
		Model(&models.ProcessedTransactionModel{}).
		Where("timestamp >= ?", time.Now().Add(-window)).
		Select("SUM(amount_usd)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Decimal{}, fmt.Errorf("querying total revenue: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *DefaultStatsRepository) RevenueByCountry(ctx context.Context, window time.Duration) ([]domain.RevenueBreakdown, error) {
	return r.revenueBy(ctx, "country", window)
}

func (r *DefaultStatsRepository) RevenueByCurrency(ctx context.Context, window time.Duration) ([]domain.RevenueBreakdown, error) {
	return r.revenueBy(ctx, "currency", window)
}

func (r *DefaultStatsRepository) RevenueByUser(ctx context.Context, window time.Duration) ([]domain.RevenueBreakdown, error) {
	return r.revenueBy(ctx, "user_id", window)
}

func (r *DefaultStatsRepository) revenueBy(ctx context.Context, column string, window time.Duration) ([]domain.RevenueBreakdown, error) {
	rows, err := r.DB.WithContext(ctx).
		Model(&models.ProcessedTransactionModel{}).
		Where("timestamp >= ?", time.Now().Add(-window)).
		Select(column + " AS key, SUM(amount_usd) AS revenue").
		Group(column).
		Order("revenue DESC").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("querying revenue by %s: %w", column, err)
	}
	defer rows.Close()

	var breakdown []domain.RevenueBreakdown
	for rows.Next() {
		var entry domain.RevenueBreakdown
		if err := rows.Scan(&entry.Key, &entry.RevenueUSD); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, entry)
	}
	return breakdown, rows.Err()
}

func (r *DefaultStatsRepository) HourlyActivity(ctx context.Context, window time.Duration) ([]domain.HourlyActivity, error) {
	rows, err := r.DB.WithContext(ctx).
		Raw(`SELECT DATE_TRUNC('hour', timestamp) AS hour,
		            COUNT(*) AS transaction_count,
		            SUM(amount_usd) AS revenue_usd
		     FROM processed_transactions
		     WHERE timestamp >= ?
		     GROUP BY hour
		     ORDER BY hour`, time.Now().Add(-window)).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("querying hourly activity: %w", err)
	}
	defer rows.Close()

	var activity []domain.HourlyActivity
	for rows.Next() {
		var entry domain.HourlyActivity
		if err := rows.Scan(&entry.Hour, &entry.TransactionCount, &entry.RevenueUSD); err != nil {
			return nil, err
		}
		activity = append(activity, entry)
	}
	return activity, rows.Err()
}

func (r *DefaultStatsRepository) Summary(ctx context.Context, window time.Duration) (*domain.SummaryStats, error) {
	row := r.DB.WithContext(ctx).
		Raw(`SELECT COUNT(*),
		            COALESCE(SUM(amount_usd), 0),
		            COUNT(DISTINCT user_id),
		            COUNT(DISTINCT country)
		     FROM processed_transactions
		     WHERE timestamp >= ?`, time.Now().Add(-window)).
		Row()

	var stats domain.SummaryStats
	if err := row.Scan(&stats.TransactionCount, &stats.TotalRevenueUSD, &stats.DistinctUsers, &stats.DistinctCountries); err != nil {
		return nil, fmt.Errorf("querying summary: %w", err)
	}
	return &stats, nil
}

var _ domain.StatisticsSource = (*DefaultStatsRepository)(nil)
