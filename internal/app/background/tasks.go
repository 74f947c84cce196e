package background

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/config"
	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/LavaJover/shvark-fx-pipeline/internal/generator"
	publisher "github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-fx-pipeline/internal/usecase"
)

// PipelineTasks supervises the two consume loops and drives the periodic
// generation jobs. Each loop runs on its own goroutine and none of them
// blocks another; all coordination happens through the bus and the store.
// Tickers fire one full interval after start (none at t=0), so an
// FX interval of 30 over a 90-unit run fires at 30, 60 and 90.
type PipelineTasks struct {
	Normalizer   usecase.NormalizationUsecase
	RateIngestor usecase.RateIngestionUsecase
	TxGen        *generator.TransactionGenerator
	FXGen        *generator.FXRateGenerator
	Publisher    domain.PublisherPort
	Kafka        config.KafkaService
	Generator    config.GeneratorConfig
	Metrics      *metrics.PipelineMetrics

	rng      *rand.Rand
	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewPipelineTasks(
	normalizer usecase.NormalizationUsecase,
	rateIngestor usecase.RateIngestionUsecase,
	txGen *generator.TransactionGenerator,
	fxGen *generator.FXRateGenerator,
	pub domain.PublisherPort,
	kafkaCfg config.KafkaService,
	genCfg config.GeneratorConfig,
	pipelineMetrics *metrics.PipelineMetrics) *PipelineTasks {

	return &PipelineTasks{
		Normalizer:   normalizer,
		RateIngestor: rateIngestor,
		TxGen:        txGen,
		FXGen:        fxGen,
		Publisher:    pub,
		Kafka:        kafkaCfg,
		Generator:    genCfg,
		Metrics:      pipelineMetrics,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (t *PipelineTasks) StartAll(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)

	t.wg.Add(4)
	go func() {
		defer t.wg.Done()
		if err := t.RateIngestor.Start(ctx); err != nil {
			slog.Error("rate ingestion processor failed", "error", err)
		}
	}()
	go func() {
		defer t.wg.Done()
		if err := t.Normalizer.Start(ctx); err != nil {
			slog.Error("normalization processor failed", "error", err)
		}
	}()
	go func() {
		defer t.wg.Done()
		t.startFXRateJob(ctx)
	}()
	go func() {
		defer t.wg.Done()
		t.startTransactionJob(ctx)
	}()
}

// Stop signals every loop to finish at its next suspension point and waits
// for them. Safe to call more than once.
func (t *PipelineTasks) Stop() {
	t.stopOnce.Do(func() {
		t.cancel()
		t.wg.Wait()
	})
}

func (t *PipelineTasks) startFXRateJob(ctx context.Context) {
	ticker := time.NewTicker(t.Generator.FXInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.RunFXRateJob(); err != nil {
				slog.Error("fx rate generation job failed", "error", err)
			}
		}
	}
}

func (t *PipelineTasks) startTransactionJob(ctx context.Context) {
	ticker := time.NewTicker(t.Generator.TransactionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.RunTransactionJob(); err != nil {
				slog.Error("transaction generation job failed", "error", err)
			}
		}
	}
}

// RunFXRateJob publishes one fresh rate sample per non-USD currency.
func (t *PipelineTasks) RunFXRateJob() error {
	samples := t.FXGen.GenerateRates()
	events := make([]publisher.FXRateEvent, 0, len(samples))
	for _, s := range samples {
		events = append(events, publisher.FXRateEvent{
			Currency:  s.Currency,
			Rate:      s.RateToUSD,
			Timestamp: s.Timestamp,
		})
	}

	msgs := make([]domain.Message, 0, len(events))
	for _, event := range events {
		v, err := json.Marshal(event)
		if err != nil {
			return err
		}
		msgs = append(msgs, domain.Message{Key: []byte(event.Currency), Value: v})
	}
	if err := t.Publisher.Publish(t.Kafka.FXTopic, msgs...); err != nil {
		return err
	}

	t.Metrics.RecordGeneratedFXRates(len(events))
	t.Metrics.RecordPublished(t.Kafka.FXTopic, len(msgs))
	slog.Info("generated fx rates", "count", len(events))
	return nil
}

// RunTransactionJob publishes a randomly sized batch of transactions,
// batch size uniform within the configured bounds.
func (t *PipelineTasks) RunTransactionJob() error {
	size := t.Generator.MinBatchSize
	if t.Generator.MaxBatchSize > t.Generator.MinBatchSize {
		size += t.rng.Intn(t.Generator.MaxBatchSize - t.Generator.MinBatchSize + 1)
	}

	batch := t.TxGen.GenerateBatch(size)
	msgs := make([]domain.Message, 0, len(batch))
	for _, tx := range batch {
		event := publisher.TransactionEvent{
			TransactionID: tx.TransactionID,
			Amount:        tx.Amount,
			Currency:      tx.Currency,
			Country:       tx.Country,
			UserID:        tx.UserID,
			Timestamp:     tx.Timestamp,
		}
		v, err := json.Marshal(event)
		if err != nil {
			return err
		}
		msgs = append(msgs, domain.Message{Key: []byte(event.UserID), Value: v})
	}
	if err := t.Publisher.Publish(t.Kafka.TransactionTopic, msgs...); err != nil {
		return err
	}

	t.Metrics.RecordGeneratedTransactions(len(batch))
	t.Metrics.RecordPublished(t.Kafka.TransactionTopic, len(msgs))
	slog.Info("generated transactions", "count", len(batch))
	return nil
}
