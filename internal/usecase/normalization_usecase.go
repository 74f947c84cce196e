package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	publisher "github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

type NormalizationUsecase interface {
	Start(ctx context.Context) error
}

// DefaultNormalizationUsecase consumes transaction events, persists the
// raw transaction, converts the amount to USD with the latest known rate
// and persists the normalized record. Failures are contained per message:
// transient store errors leave the offset uncommitted for redelivery,
// malformed payloads are recorded and dropped. The loop itself only stops
// on context cancellation.
type DefaultNormalizationUsecase struct {
	TxRepo     domain.TransactionRepository
	RateRepo   domain.FXRateRepository
	Subscriber domain.SubscriberPort
	Topic      string
	GroupID    string
	DropLog    logger.DroppedMessageLogger
	Metrics    *metrics.PipelineMetrics
}

func NewDefaultNormalizationUsecase(
	txRepo domain.TransactionRepository,
	rateRepo domain.FXRateRepository,
	subscriber domain.SubscriberPort,
	topic, groupID string,
	dropLog logger.DroppedMessageLogger,
	pipelineMetrics *metrics.PipelineMetrics) *DefaultNormalizationUsecase {

	return &DefaultNormalizationUsecase{
		TxRepo:     txRepo,
		RateRepo:   rateRepo,
		Subscriber: subscriber,
		Topic:      topic,
		GroupID:    groupID,
		DropLog:    dropLog,
		Metrics:    pipelineMetrics,
	}
}

func (uc *DefaultNormalizationUsecase) Start(ctx context.Context) error {
	msgs, err := uc.Subscriber.Subscribe(ctx, uc.Topic, uc.GroupID)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", uc.Topic, err)
	}

	slog.Info("normalization processor started", "topic", uc.Topic, "group", uc.GroupID)
	for msg := range msgs {
		uc.handleMessage(ctx, msg)
	}
	slog.Info("normalization processor stopped", "topic", uc.Topic)
	return nil
}

func (uc *DefaultNormalizationUsecase) handleMessage(ctx context.Context, msg domain.Message) {
	start := time.Now()
	defer func() {
		uc.Metrics.RecordProcessingDuration(uc.Topic, time.Since(start).Seconds())
	}()

	event, err := decodeTransactionEvent(msg.Value)
	if err != nil {
		// Retrying a malformed message cannot succeed: record and drop
		slog.Error("dropping malformed transaction event", "error", err)
		uc.Metrics.RecordError(uc.Topic, "malformed_event")
		if logErr := uc.DropLog.LogDroppedMessage(ctx, uc.Topic, err.Error(), msg.Value); logErr != nil {
			slog.Error("failed to record dropped message", "error", logErr)
		}
		uc.commit(msg)
		return
	}

	tx := &domain.Transaction{
		TransactionID: event.TransactionID,
		Amount:        event.Amount,
		Currency:      event.Currency,
		Country:       event.Country,
		UserID:        event.UserID,
		Timestamp:     event.Timestamp,
	}
	if err := uc.TxRepo.SaveTransaction(ctx, tx); err != nil {
		// Offset stays uncommitted so the bus redelivers; the write is idempotent
		slog.Error("failed to persist raw transaction", "transaction_id", tx.TransactionID, "error", err)
		uc.Metrics.RecordError(uc.Topic, "store_raw")
		return
	}

	rate, coldStart, err := uc.resolveRate(ctx, tx.Currency)
	if err != nil {
		slog.Error("failed to resolve fx rate", "transaction_id", tx.TransactionID, "currency", tx.Currency, "error", err)
		uc.Metrics.RecordError(uc.Topic, "rate_lookup")
		return
	}
	if coldStart {
		slog.Warn("no fx sample yet, converting at parity", "transaction_id", tx.TransactionID, "currency", tx.Currency)
		uc.Metrics.RecordColdStart(tx.Currency)
	}

	normalized := &domain.NormalizedTransaction{
		TransactionID: tx.TransactionID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		AmountUSD:     tx.Amount.DivRound(rate, 2),
		Country:       tx.Country,
		UserID:        tx.UserID,
		FXRate:        rate,
		Timestamp:     tx.Timestamp,
	}
	if err := uc.TxRepo.SaveNormalized(ctx, normalized); err != nil {
		slog.Error("failed to persist normalized transaction", "transaction_id", tx.TransactionID, "error", err)
		uc.Metrics.RecordError(uc.Topic, "store_normalized")
		return
	}

	uc.commit(msg)

	amountUSD, _ := normalized.AmountUSD.Float64()
	uc.Metrics.RecordTransactionProcessed(tx.Currency, amountUSD)
	slog.Info("transaction normalized",
		"transaction_id", tx.TransactionID,
		"currency", tx.Currency,
		"amount_usd", normalized.AmountUSD.String(),
		"fx_rate", rate.String())
}

// resolveRate returns the rate to divide by and whether the parity
// fallback was used. USD converts at exactly 1.0 without touching the store.
func (uc *DefaultNormalizationUsecase) resolveRate(ctx context.Context, currency string) (decimal.Decimal, bool, error) {
	if currency == "USD" {
		return decimal.NewFromInt(1), false, nil
	}
	rate, err := uc.RateRepo.LatestRate(ctx, currency)
	if errors.Is(err, domain.ErrNoRateSample) {
		return decimal.NewFromInt(1), true, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return rate, false, nil
}

func (uc *DefaultNormalizationUsecase) commit(msg domain.Message) {
	if msg.Commit == nil {
		return
	}
	// A failed commit only means redelivery, which the idempotent writes absorb
	if err := msg.Commit(); err != nil {
		slog.Error("failed to commit offset", "topic", uc.Topic, "error", err)
	}
}

func decodeTransactionEvent(value []byte) (*publisher.TransactionEvent, error) {
	var event publisher.TransactionEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	}
	if event.TransactionID == "" {
		return nil, fmt.Errorf("%w: missing transaction_id", domain.ErrInvalidEvent)
	}
	if len(event.Currency) != 3 {
		return nil, fmt.Errorf("%w: bad currency %q", domain.ErrInvalidEvent, event.Currency)
	}
	if !event.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidEvent)
	}
	return &event, nil
}
