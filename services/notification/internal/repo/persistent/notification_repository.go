package persistent

import (
	"context"
	"errors"

	"hello-madurai/services/notification/internal/entity"
	"hello-madurai/services/notification/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationLogRepository interface {
	Create(ctx context.Context, log *entity.NotificationLog) error
	// Update stores the attempts and counts of an existing log.
	Update(ctx context.Context, log *entity.NotificationLog) error
	GetByID(ctx context.Context, id string) (*entity.NotificationLog, error)
	List(ctx context.Context, filter entity.LogFilter) ([]*entity.NotificationLog, int64, error)
}

type notificationLogRepository struct {
	db *gorm.DB
}

func NewNotificationLogRepository(db *gorm.DB) NotificationLogRepository {
	return &notificationLogRepository{db: db}
}

func (r *notificationLogRepository) Create(ctx context.Context, log *entity.NotificationLog) error {
	m, err := ToNotificationLogModel(log)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.ID = m.ID
	log.CreatedAt = m.CreatedAt
	return nil
}

func (r *notificationLogRepository) Update(ctx context.Context, log *entity.NotificationLog) error {
	if uuid.Validate(log.ID) != nil {
		return entity.ErrNotFound
	}
	m, err := ToNotificationLogModel(log)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.NotificationLogModel{}).
		Where("id = ?", log.ID).
		Updates(map[string]interface{}{
			"success_count": m.SuccessCount,
			"failure_count": m.FailureCount,
			"attempts":      m.Attempts,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *notificationLogRepository) GetByID(ctx context.Context, id string) (*entity.NotificationLog, error) {
	if uuid.Validate(id) != nil {
		return nil, entity.ErrNotFound
	}

	var m model.NotificationLogModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToNotificationLogEntity(&m)
}

func (r *notificationLogRepository) filtered(ctx context.Context, filter entity.LogFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.NotificationLogModel{})
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.ContentID != "" {
		query = query.Where("content_id = ?", filter.ContentID)
	}
	if filter.Source != "" {
		query = query.Where("source = ?", string(filter.Source))
	}
	return query
}

func (r *notificationLogRepository) List(ctx context.Context, filter entity.LogFilter) ([]*entity.NotificationLog, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.filtered(ctx, filter).Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var models []model.NotificationLogModel
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]*entity.NotificationLog, 0, len(models))
	for i := range models {
		l, err := ToNotificationLogEntity(&models[i])
		if err != nil {
			return nil, 0, err
		}
		logs = append(logs, l)
	}
	return logs, total, nil
}
