package mappers

import (
	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/models"
)

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		TransactionID: tx.TransactionID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Country:       tx.Country,
		UserID:        tx.UserID,
		Timestamp:     tx.Timestamp,
	}
}

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: model.TransactionID,
		Amount:        model.Amount,
		Currency:      model.Currency,
		Country:       model.Country,
		UserID:        model.UserID,
		Timestamp:     model.Timestamp,
	}
}

func ToGORMProcessedTransaction(tx *domain.NormalizedTransaction) *models.ProcessedTransactionModel {
	return &models.ProcessedTransactionModel{
		TransactionID: tx.TransactionID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		AmountUSD:     tx.AmountUSD,
		Country:       tx.Country,
		UserID:        tx.UserID,
		FXRate:        tx.FXRate,
		Timestamp:     tx.Timestamp,
	}
}

func ToDomainNormalizedTransaction(model *models.ProcessedTransactionModel) *domain.NormalizedTransaction {
	return &domain.NormalizedTransaction{
		TransactionID: model.TransactionID,
		Amount:        model.Amount,
		Currency:      model.Currency,
		AmountUSD:     model.AmountUSD,
		Country:       model.Country,
		UserID:        model.UserID,
		FXRate:        model.FXRate,
		Timestamp:     model.Timestamp,
	}
}
