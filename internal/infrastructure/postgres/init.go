package postgres

import (
	"log"

	"github.com/LavaJover/shvark-fx-pipeline/internal/config"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-fx-pipeline/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.PipelineConfig) *gorm.DB {
	dsn := cfg.PipelineDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.TransactionModel{}, &models.FXRateModel{}, &models.ProcessedTransactionModel{}, &logger.DroppedMessageEvent{})

	return db
}
