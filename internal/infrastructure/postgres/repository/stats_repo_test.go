package repository

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNormalized(t *testing.T, repo *DefaultTransactionRepository, id, currency, country, userID string, amountUSD string, ts time.Time) {
	t.Helper()
	usd := decimal.RequireFromString(amountUSD)
	err := repo.SaveNormalized(context.Background(), &domain.NormalizedTransaction{
		TransactionID: id,
		Amount:        usd,
		Currency:      currency,
		AmountUSD:     usd,
		Country:       country,
		UserID:        userID,
		FXRate:        decimal.NewFromInt(1),
		Timestamp:     ts,
	})
	require.NoError(t, err)
}

func TestTotalRevenueSumsOnlyWindow(t *testing.T) {
	db := openTestDB(t)
	txRepo := NewDefaultTransactionRepository(db)
	statsRepo := NewDefaultStatsRepository(db)

	now := time.Now().UTC()
	seedNormalized(t, txRepo, "TXN_A", "EUR", "Germany", "USER_1001", "100.00", now)
	seedNormalized(t, txRepo, "TXN_B", "JPY", "Japan", "USER_1002", "50.25", now)
	seedNormalized(t, txRepo, "TXN_OLD", "EUR", "Germany", "USER_1001", "999.00", now.Add(-48*time.Hour))

	total, err := statsRepo.TotalRevenue(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("150.25")), "got %s", total)
}

func TestTotalRevenueEmptyStoreIsZero(t *testing.T) {
	db := openTestDB(t)
	statsRepo := NewDefaultStatsRepository(db)

	total, err := statsRepo.TotalRevenue(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestRevenueByCountryOrdersByRevenue(t *testing.T) {
	db := openTestDB(t)
	txRepo := NewDefaultTransactionRepository(db)
	statsRepo := NewDefaultStatsRepository(db)

	now := time.Now().UTC()
	seedNormalized(t, txRepo, "TXN_1", "EUR", "Germany", "USER_1001", "40.00", now)
	seedNormalized(t, txRepo, "TXN_2", "EUR", "Germany", "USER_1002", "60.00", now)
	seedNormalized(t, txRepo, "TXN_3", "THB", "Thailand", "USER_1003", "500.00", now)

	breakdown, err := statsRepo.RevenueByCountry(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Thailand", breakdown[0].Key)
	assert.True(t, breakdown[0].RevenueUSD.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, "Germany", breakdown[1].Key)
	assert.True(t, breakdown[1].RevenueUSD.Equal(decimal.RequireFromString("100.00")))
}

func TestRevenueByUserGroupsPerUser(t *testing.T) {
	db := openTestDB(t)
	txRepo := NewDefaultTransactionRepository(db)
	statsRepo := NewDefaultStatsRepository(db)

	now := time.Now().UTC()
	seedNormalized(t, txRepo, "TXN_1", "USD", "US", "USER_1001", "10.00", now)
	seedNormalized(t, txRepo, "TXN_2", "USD", "US", "USER_1001", "15.00", now)
	seedNormalized(t, txRepo, "TXN_3", "USD", "UK", "USER_1002", "5.00", now)

	breakdown, err := statsRepo.RevenueByUser(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "USER_1001", breakdown[0].Key)
	assert.True(t, breakdown[0].RevenueUSD.Equal(decimal.RequireFromString("25.00")))
}

func TestSummaryCountsDistincts(t *testing.T) {
	db := openTestDB(t)
	txRepo := NewDefaultTransactionRepository(db)
	statsRepo := NewDefaultStatsRepository(db)

	now := time.Now().UTC()
	seedNormalized(t, txRepo, "TXN_1", "EUR", "Germany", "USER_1001", "10.00", now)
	seedNormalized(t, txRepo, "TXN_2", "GBP", "UK", "USER_1001", "20.00", now)
	seedNormalized(t, txRepo, "TXN_3", "SGD", "Singapore", "USER_1002", "30.00", now)

	summary, err := statsRepo.Summary(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.TransactionCount)
	assert.EqualValues(t, 2, summary.DistinctUsers)
	assert.EqualValues(t, 3, summary.DistinctCountries)
	assert.True(t, summary.TotalRevenueUSD.Equal(decimal.RequireFromString("60.00")))
}
