package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/LavaJover/shvark-fx-pipeline/internal/app/background"
	"github.com/LavaJover/shvark-fx-pipeline/internal/config"
	"github.com/LavaJover/shvark-fx-pipeline/internal/generator"
	publisher "github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/kafka"
	pipelinelogger "github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-fx-pipeline/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Bus must be reachable before any loop starts
	brokerAddr := fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)
	conn, err := kafka.Dial("tcp", brokerAddr)
	if err != nil {
		log.Fatalf("failed to reach kafka broker %s: %v", brokerAddr, err)
	}
	conn.Close()

	brokers := []string{brokerAddr}
	pub := publisher.NewDefaultKafkaPublisher(brokers)
	sub := publisher.NewDefaultKafkaSubscriber(brokers)

	// Init repos
	txRepo := repository.NewDefaultTransactionRepository(db)
	rateRepo := repository.NewDefaultFXRateRepository(db)
	dropLog := pipelinelogger.NewPGDroppedMessageLogger(db)

	// Init metrics
	pipelineMetrics := metrics.NewPipelineMetrics(prometheus.DefaultRegisterer)

	// Init generators
	txGen, err := generator.NewTransactionGenerator()
	if err != nil {
		log.Fatalf("failed to init transaction generator: %v", err)
	}
	fxGen := generator.NewFXRateGenerator()

	// Init processors
	normalizer := usecase.NewDefaultNormalizationUsecase(
		txRepo,
		rateRepo,
		sub,
		cfg.KafkaService.TransactionTopic,
		cfg.KafkaService.TransactionGroupID,
		dropLog,
		pipelineMetrics,
	)
	rateIngestor := usecase.NewDefaultRateIngestionUsecase(
		rateRepo,
		sub,
		cfg.KafkaService.FXTopic,
		cfg.KafkaService.FXGroupID,
		dropLog,
		pipelineMetrics,
	)

	tasks := background.NewPipelineTasks(
		normalizer,
		rateIngestor,
		txGen,
		fxGen,
		pub,
		cfg.KafkaService,
		cfg.GeneratorConfig,
		pipelineMetrics,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tasks.StartAll(ctx)

	// Metrics endpoint
	go func() {
		metricsAddr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(metricsAddr, nil); err != nil {
			slog.Error("metrics server failed", "error", err)
		}
	}()

	log.Printf("pipeline started: brokers=%s fx_interval=%s tx_interval=%s\n",
		brokerAddr, cfg.GeneratorConfig.FXInterval, cfg.GeneratorConfig.TransactionInterval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("received signal: %v, shutting down\n", sig)

	tasks.Stop()
	if err := pub.Close(); err != nil {
		slog.Error("failed to close publisher", "error", err)
	}
	log.Println("pipeline stopped")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
