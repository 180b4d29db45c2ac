package persistent

import (
	"encoding/json"
	"fmt"

	"hello-madurai/services/notification/internal/entity"
	"hello-madurai/services/notification/internal/model"

	"gorm.io/datatypes"
)

func ToNotificationLogModel(l *entity.NotificationLog) (*model.NotificationLogModel, error) {
	attempts := l.Attempts
	if attempts == nil {
		attempts = []entity.Attempt{}
	}
	raw, err := json.Marshal(attempts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attempts: %w", err)
	}

	return &model.NotificationLogModel{
		ID:           l.ID,
		Kind:         l.Kind,
		ContentID:    l.ContentID,
		Source:       string(l.Source),
		Title:        l.Title,
		SuccessCount: l.SuccessCount,
		FailureCount: l.FailureCount,
		Attempts:     datatypes.JSON(raw),
		CreatedAt:    l.CreatedAt,
	}, nil
}

func ToNotificationLogEntity(m *model.NotificationLogModel) (*entity.NotificationLog, error) {
	var attempts []entity.Attempt
	if len(m.Attempts) > 0 {
		if err := json.Unmarshal(m.Attempts, &attempts); err != nil {
			return nil, fmt.Errorf("failed to decode attempts of log %s: %w", m.ID, err)
		}
	}

	return &entity.NotificationLog{
		ID:           m.ID,
		Kind:         m.Kind,
		ContentID:    m.ContentID,
		Source:       entity.Source(m.Source),
		Title:        m.Title,
		SuccessCount: m.SuccessCount,
		FailureCount: m.FailureCount,
		Attempts:     attempts,
		CreatedAt:    m.CreatedAt,
	}, nil
}
