package domain

import "context"

type TransactionRepository interface {
	// SaveTransaction persists a raw transaction. Duplicate identifiers
	// are a no-op, not an error.
	SaveTransaction(ctx context.Context, tx *Transaction) error

	// SaveNormalized persists a normalized transaction. Duplicate
	// identifiers are a no-op, not an error.
	SaveNormalized(ctx context.Context, tx *NormalizedTransaction) error

	GetTransactionByID(ctx context.Context, transactionID string) (*Transaction, error)
	GetNormalizedByID(ctx context.Context, transactionID string) (*NormalizedTransaction, error)
}
