package generator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTransaction(t *testing.T) {
	gen, err := NewTransactionGenerator()
	require.NoError(t, err)

	minAmt := decimal.NewFromInt(10)
	maxAmt := decimal.NewFromInt(5000)

	for i := 0; i < 200; i++ {
		tx := gen.Generate()

		assert.True(t, strings.HasPrefix(tx.TransactionID, "TXN_"))
		assert.True(t, tx.Amount.GreaterThanOrEqual(minAmt), "amount %s below lower bound", tx.Amount)
		assert.True(t, tx.Amount.LessThanOrEqual(maxAmt), "amount %s above upper bound", tx.Amount)
		assert.Equal(t, tx.Amount, tx.Amount.Round(2))
		assert.Contains(t, currencies, tx.Currency)
		assert.Contains(t, countries, tx.Country)
		assert.True(t, strings.HasPrefix(tx.UserID, "USER_"))
		assert.False(t, tx.Timestamp.IsZero())
	}
}

func TestGenerateTransactionUniqueIDs(t *testing.T) {
	gen, err := NewTransactionGenerator()
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for _, tx := range gen.GenerateBatch(1000) {
		_, dup := seen[tx.TransactionID]
		require.False(t, dup, "duplicate transaction id %s", tx.TransactionID)
		seen[tx.TransactionID] = struct{}{}
	}
}

func TestGenerateBatchSize(t *testing.T) {
	gen, err := NewTransactionGenerator()
	require.NoError(t, err)

	assert.Len(t, gen.GenerateBatch(50), 50)
	assert.Empty(t, gen.GenerateBatch(0))
}
