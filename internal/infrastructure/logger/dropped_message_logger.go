package logger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DroppedMessageEvent records a bus message the pipeline gave up on:
// malformed payloads and rate samples that failed to persist. Kept in the
// store so drops are auditable instead of vanishing into process logs.
type DroppedMessageEvent struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	Topic      string
	Reason     string
	Payload    string
	OccurredAt time.Time
}

type DroppedMessageLogger interface {
	LogDroppedMessage(ctx context.Context, topic, reason string, payload []byte) error
}

type PGDroppedMessageLogger struct {
	db *gorm.DB
}

func NewPGDroppedMessageLogger(db *gorm.DB) *PGDroppedMessageLogger {
	return &PGDroppedMessageLogger{db: db}
}

func (l *PGDroppedMessageLogger) LogDroppedMessage(ctx context.Context, topic, reason string, payload []byte) error {
	event := DroppedMessageEvent{
		ID:         uuid.New().String(),
		Topic:      topic,
		Reason:     reason,
		Payload:    string(payload),
		OccurredAt: time.Now().UTC(),
	}
	return l.db.WithContext(ctx).Create(&event).Error
}
