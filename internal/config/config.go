package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PipelineConfig struct {
	Env             string `yaml:"env" env-default:"local"`
	PipelineDB      `yaml:"pipeline_db"`
	KafkaService    `yaml:"kafka-service"`
	GeneratorConfig `yaml:"generator"`
	MetricsServer   `yaml:"metrics_server"`
	LogConfig       `yaml:"log_config"`
	MigrationsPath  string `yaml:"migrations_path"`
}

type PipelineDB struct {
	Dsn string `yaml:"dsn"`
}

type KafkaService struct {
	Host               string `yaml:"host"`
	Port               string `yaml:"port"`
	FXTopic            string `yaml:"fx_topic" env-default:"fx-rates"`
	TransactionTopic   string `yaml:"transaction_topic" env-default:"transactions"`
	FXGroupID          string `yaml:"fx_group_id" env-default:"fx-rate-ingestion"`
	TransactionGroupID string `yaml:"transaction_group_id" env-default:"transaction-normalization"`
}

type GeneratorConfig struct {
	FXInterval          time.Duration `yaml:"fx_interval" env-default:"30s"`
	TransactionInterval time.Duration `yaml:"transaction_interval" env-default:"60s"`
	MinBatchSize        int           `yaml:"min_batch_size" env-default:"20"`
	MaxBatchSize        int           `yaml:"max_batch_size" env-default:"100"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"9100"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

func MustLoad() *PipelineConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PIPELINE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PIPELINE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PipelineConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
