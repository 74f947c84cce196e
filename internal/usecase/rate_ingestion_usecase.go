package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	publisher "github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/metrics"
)

type RateIngestionUsecase interface {
	Start(ctx context.Context) error
}

// DefaultRateIngestionUsecase consumes FX rate events and appends them to
// the rate history. Rate samples are not critical enough to block the
// loop: any failure is recorded and the message dropped, the next sample
// supersedes it within one generation interval anyway.
type DefaultRateIngestionUsecase struct {
	RateRepo   domain.FXRateRepository
	Subscriber domain.SubscriberPort
	Topic      string
	GroupID    string
	DropLog    logger.DroppedMessageLogger
	Metrics    *metrics.PipelineMetrics
}

func NewDefaultRateIngestionUsecase(
	rateRepo domain.FXRateRepository,
	subscriber domain.SubscriberPort,
	topic, groupID string,
	dropLog logger.DroppedMessageLogger,
	pipelineMetrics *metrics.PipelineMetrics) *DefaultRateIngestionUsecase {

	return &DefaultRateIngestionUsecase{
		RateRepo:   rateRepo,
		Subscriber: subscriber,
		Topic:      topic,
		GroupID:    groupID,
		DropLog:    dropLog,
		Metrics:    pipelineMetrics,
	}
}

func (uc *DefaultRateIngestionUsecase) Start(ctx context.Context) error {
	msgs, err := uc.Subscriber.Subscribe(ctx, uc.Topic, uc.GroupID)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", uc.Topic, err)
	}

	slog.Info("rate ingestion processor started", "topic", uc.Topic, "group", uc.GroupID)
	for msg := range msgs {
		uc.handleMessage(ctx, msg)
	}
	slog.Info("rate ingestion processor stopped", "topic", uc.Topic)
	return nil
}

func (uc *DefaultRateIngestionUsecase) handleMessage(ctx context.Context, msg domain.Message) {
	start := time.Now()
	defer func() {
		uc.Metrics.RecordProcessingDuration(uc.Topic, time.Since(start).Seconds())
	}()

	event, err := decodeFXRateEvent(msg.Value)
	if err != nil {
		slog.Error("dropping malformed fx rate event", "error", err)
		uc.Metrics.RecordError(uc.Topic, "malformed_event")
		if logErr := uc.DropLog.LogDroppedMessage(ctx, uc.Topic, err.Error(), msg.Value); logErr != nil {
			slog.Error("failed to record dropped message", "error", logErr)
		}
		uc.commit(msg)
		return
	}

	sample := &domain.FXRateSample{
		Currency:  event.Currency,
		RateToUSD: event.Rate,
		Timestamp: event.Timestamp,
	}
	if err := uc.RateRepo.SaveRateSample(ctx, sample); err != nil {
		slog.Error("failed to persist fx rate sample", "currency", sample.Currency, "error", err)
		uc.Metrics.RecordError(uc.Topic, "store_rate")
		if logErr := uc.DropLog.LogDroppedMessage(ctx, uc.Topic, err.Error(), msg.Value); logErr != nil {
			slog.Error("failed to record dropped message", "error", logErr)
		}
		uc.commit(msg)
		return
	}

	uc.commit(msg)
	uc.Metrics.RecordRateIngested(sample.Currency)
	slog.Info("fx rate stored", "currency", sample.Currency, "rate", sample.RateToUSD.String())
}

func (uc *DefaultRateIngestionUsecase) commit(msg domain.Message) {
	if msg.Commit == nil {
		return
	}
	if err := msg.Commit(); err != nil {
		slog.Error("failed to commit offset", "topic", uc.Topic, "error", err)
	}
}

func decodeFXRateEvent(value []byte) (*publisher.FXRateEvent, error) {
	var event publisher.FXRateEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	}
	if len(event.Currency) != 3 {
		return nil, fmt.Errorf("%w: bad currency %q", domain.ErrInvalidEvent, event.Currency)
	}
	if !event.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be positive", domain.ErrInvalidEvent)
	}
	return &event, nil
}
