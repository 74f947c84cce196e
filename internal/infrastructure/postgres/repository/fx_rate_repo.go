package repository

import (
	"context"
	"errors"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultFXRateRepository struct {
	DB *gorm.DB
}

func NewDefaultFXRateRepository(db *gorm.DB) *DefaultFXRateRepository {
	return &DefaultFXRateRepository{DB: db}
}

func (r *DefaultFXRateRepository) SaveRateSample(ctx context.Context, sample *domain.FXRateSample) error {
	model := mappers.ToGORMFXRate(sample)
	return r.DB.WithContext(ctx).Create(model).Error
}

// LatestRate picks the sample with the maximum timestamp for the currency.
// On a cold start (no sample yet) it returns parity together with
// domain.ErrNoRateSample; converting at 1.0 until the first sample arrives
// is the documented approximation, not an error.
func (r *DefaultFXRateRepository) LatestRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	var model models.FXRateModel
	err := r.DB.WithContext(ctx).
		Where("currency = ?", currency).
		Order("timestamp DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.NewFromInt(1), domain.ErrNoRateSample
		}
		return decimal.Decimal{}, err
	}
	return model.RateToUSD, nil
}

func (r *DefaultFXRateRepository) RatesInRange(ctx context.Context, currency string, from, to time.Time) ([]*domain.FXRateSample, error) {
	var rateModels []models.FXRateModel
	err := r.DB.WithContext(ctx).
		Where("currency = ? AND timestamp >= ? AND timestamp <= ?", currency, from, to).
		Order("timestamp ASC").
		Find(&rateModels).Error
	if err != nil {
		return nil, err
	}

	samples := make([]*domain.FXRateSample, 0, len(rateModels))
	for i := range rateModels {
		samples = append(samples, mappers.ToDomainFXRate(&rateModels[i]))
	}
	return samples, nil
}
