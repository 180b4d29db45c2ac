package persistent

import (
	"context"
	"testing"

	"hello-madurai/services/notification/internal/entity"
	"hello-madurai/services/notification/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) NotificationLogRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.New().String()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.NotificationLogModel{}))
	return NewNotificationLogRepository(db)
}

func TestNotificationLogRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	log := &entity.NotificationLog{
		Kind:      "event",
		ContentID: "e-1",
		Source:    entity.SourcePublish,
		Title:     "Chithirai Festival",
		Attempts: []entity.Attempt{
			{Target: "event_en", Lang: "en", MessageID: "projects/p/messages/1"},
			{Target: "event_ta", Lang: "ta", Error: "quota exceeded", StatusCode: 429},
		},
	}
	log.Tally()
	require.NoError(t, repo.Create(ctx, log))
	require.NotEmpty(t, log.ID)

	got, err := repo.GetByID(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, "event", got.Kind)
	assert.Equal(t, 1, got.SuccessCount)
	assert.Equal(t, 1, got.FailureCount)
	assert.Equal(t, log.Attempts, got.Attempts)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestNotificationLogRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestNotificationLogRepository_List(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, l := range []*entity.NotificationLog{
		{Kind: "news", ContentID: "n-1", Source: entity.SourcePublish},
		{Kind: "news", ContentID: "n-2", Source: entity.SourcePublish},
		{Kind: "all", Source: entity.SourceManual},
	} {
		require.NoError(t, repo.Create(ctx, l))
	}

	logs, total, err := repo.List(ctx, entity.LogFilter{Kind: "news", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 1)

	logs, total, err = repo.List(ctx, entity.LogFilter{ContentID: "n-2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "n-2", logs[0].ContentID)
	assert.Empty(t, logs[0].Attempts)

	_, total, err = repo.List(ctx, entity.LogFilter{Source: entity.SourceManual})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestNotificationLogRepository_UpdateRecordsAttempts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	log := &entity.NotificationLog{Kind: "news", ContentID: "n-9", Source: entity.SourcePublish, Title: "Rain Alert"}
	require.NoError(t, repo.Create(ctx, log))

	log.Attempts = []entity.Attempt{
		{Target: "news_en", Lang: "en", MessageID: "projects/p/messages/7"},
		{Target: "all_en", Lang: "en", Error: "unavailable", StatusCode: 503},
	}
	log.Tally()
	require.NoError(t, repo.Update(ctx, log))

	got, err := repo.GetByID(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SuccessCount)
	assert.Equal(t, 1, got.FailureCount)
	assert.Equal(t, log.Attempts, got.Attempts)

	missing := &entity.NotificationLog{ID: uuid.New().String()}
	assert.ErrorIs(t, repo.Update(ctx, missing), entity.ErrNotFound)
}
