package repository

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

// SaveTransaction inserts the raw transaction. A second insert with the
// same transaction_id is a no-op and leaves the first-written row intact.
func (r *DefaultTransactionRepository) SaveTransaction(ctx context.Context, tx *domain.Transaction) error {
	model := mappers.ToGORMTransaction(tx)
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoNothing: true,
		}).
		Create(model).Error
}

func (r *DefaultTransactionRepository) SaveNormalized(ctx context.Context, tx *domain.NormalizedTransaction) error {
	model := mappers.ToGORMProcessedTransaction(tx)
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoNothing: true,
		}).
		Create(model).Error
}

func (r *DefaultTransactionRepository) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.WithContext(ctx).First(&model, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) GetNormalizedByID(ctx context.Context, transactionID string) (*domain.NormalizedTransaction, error) {
	var model models.ProcessedTransactionModel
	if err := r.DB.WithContext(ctx).First(&model, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainNormalizedTransaction(&model), nil
}
