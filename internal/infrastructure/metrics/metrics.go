package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PipelineMetrics bundles every pipeline counter and histogram.
type PipelineMetrics struct {
	// Generation side
	TransactionsGeneratedTotal prometheus.Counter
	FXRatesGeneratedTotal      prometheus.Counter
	MessagesPublishedTotal     prometheus.CounterVec

	// Processing side
	TransactionsProcessedTotal prometheus.CounterVec
	RevenueNormalizedTotal     prometheus.CounterVec
	ColdStartConversionsTotal  prometheus.CounterVec
	FXRatesIngestedTotal       prometheus.CounterVec

	// Failures
	ProcessingErrorsTotal prometheus.CounterVec

	// Latency
	ProcessingDuration prometheus.HistogramVec
}

func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	factory := promauto.With(reg)
	return &PipelineMetrics{
		TransactionsGeneratedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_generated_total",
				Help: "Number of synthetic transactions generated",
			},
		),

		FXRatesGeneratedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fx_rates_generated_total",
				Help: "Number of synthetic FX rate samples generated",
			},
		),

		MessagesPublishedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_published_total",
				Help: "Messages published to the bus per topic",
			},
			[]string{"topic"},
		),

		TransactionsProcessedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_processed_total",
				Help: "Transactions normalized and persisted, per currency",
			},
			[]string{"currency"},
		),

		RevenueNormalizedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revenue_normalized_usd_total",
				Help: "Cumulative normalized USD amount, per currency",
			},
			[]string{"currency"},
		),

		ColdStartConversionsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cold_start_conversions_total",
				Help: "Conversions that fell back to parity because no FX sample existed yet",
			},
			[]string{"currency"},
		),

		FXRatesIngestedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_rates_ingested_total",
				Help: "FX rate samples persisted, per currency",
			},
			[]string{"currency"},
		),

		ProcessingErrorsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "processing_errors_total",
				Help: "Per-message processing failures by topic and type",
			},
			[]string{"topic", "error_type"},
		),

		ProcessingDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "message_processing_duration_seconds",
				Help:    "Time spent handling one bus message",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"topic"},
		),
	}
}

func (m *PipelineMetrics) RecordGeneratedTransactions(n int) {
	m.TransactionsGeneratedTotal.Add(float64(n))
}

func (m *PipelineMetrics) RecordGeneratedFXRates(n int) {
	m.FXRatesGeneratedTotal.Add(float64(n))
}

func (m *PipelineMetrics) RecordPublished(topic string, n int) {
	m.MessagesPublishedTotal.WithLabelValues(topic).Add(float64(n))
}

func (m *PipelineMetrics) RecordTransactionProcessed(currency string, amountUSD float64) {
	m.TransactionsProcessedTotal.WithLabelValues(currency).Inc()
	m.RevenueNormalizedTotal.WithLabelValues(currency).Add(amountUSD)
}

func (m *PipelineMetrics) RecordColdStart(currency string) {
	m.ColdStartConversionsTotal.WithLabelValues(currency).Inc()
}

func (m *PipelineMetrics) RecordRateIngested(currency string) {
	m.FXRatesIngestedTotal.WithLabelValues(currency).Inc()
}

func (m *PipelineMetrics) RecordError(topic, errorType string) {
	m.ProcessingErrorsTotal.WithLabelValues(topic, errorType).Inc()
}

func (m *PipelineMetrics) RecordProcessingDuration(topic string, seconds float64) {
	m.ProcessingDuration.WithLabelValues(topic).Observe(seconds)
}
