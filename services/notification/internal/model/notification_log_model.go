package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationLogModel struct {
	ID           string         `gorm:"type:uuid;primary_key"`
	Kind         string         `gorm:"size:40;not null;index:idx_notification_logs_content"`
	ContentID    string         `gorm:"size:64;index:idx_notification_logs_content"`
	Source       string         `gorm:"size:20;not null"`
	Title        string         `gorm:"size:500"`
	SuccessCount int            `gorm:"not null;default:0"`
	FailureCount int            `gorm:"not null;default:0"`
	Attempts     datatypes.JSON `gorm:"not null"`
	CreatedAt    time.Time      `gorm:"index"`
}

func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

func (m *NotificationLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
