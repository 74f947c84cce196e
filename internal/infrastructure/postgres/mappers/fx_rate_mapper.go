package mappers

import (
	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/models"
)

func ToGORMFXRate(sample *domain.FXRateSample) *models.FXRateModel {
	return &models.FXRateModel{
		Currency:  sample.Currency,
		RateToUSD: sample.RateToUSD,
		Timestamp: sample.Timestamp,
	}
}

func ToDomainFXRate(model *models.FXRateModel) *domain.FXRateSample {
	return &domain.FXRateSample{
		Currency:  model.Currency,
		RateToUSD: model.RateToUSD,
		Timestamp: model.Timestamp,
	}
}
