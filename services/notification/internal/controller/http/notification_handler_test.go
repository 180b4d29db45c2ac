package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/queue"
	"hello-madurai/services/notification/internal/entity"
	"hello-madurai/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNotificationUseCase is a mock implementation of NotificationUseCase
type MockNotificationUseCase struct {
	mock.Mock
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)

func (m *MockNotificationUseCase) HandleTask(ctx context.Context, task queue.NotificationTask) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockNotificationUseCase) SendManual(ctx context.Context, req entity.ManualSend) (*entity.NotificationLog, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NotificationLog), args.Error(1)
}

func (m *MockNotificationUseCase) Subscribe(ctx context.Context, change entity.TopicChange) ([]entity.TopicStatus, error) {
	args := m.Called(change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TopicStatus), args.Error(1)
}

func (m *MockNotificationUseCase) Unsubscribe(ctx context.Context, change entity.TopicChange) ([]entity.TopicStatus, error) {
	args := m.Called(change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TopicStatus), args.Error(1)
}

func (m *MockNotificationUseCase) ListLogs(ctx context.Context, filter entity.LogFilter) ([]*entity.NotificationLog, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.NotificationLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationUseCase) GetLog(ctx context.Context, id string) (*entity.NotificationLog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NotificationLog), args.Error(1)
}

func setupTestRouter(uc *MockNotificationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewNotificationHandler(uc, logger.NewWithOptions(logger.Options{Output: io.Discard}))
	api := router.Group("/api")
	handler.Register(api, api.Group("/admin"))
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSendNotification_Success(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupTestRouter(uc)

	expected := entity.ManualSend{
		Topic:   "news",
		Title:   "Water supply cut",
		TitleTa: "குடிநீர் நிறுத்தம்",
		Body:    "Ward 12, Tuesday",
	}
	uc.On("SendManual", expected).Return(&entity.NotificationLog{
		ID:           "log-1",
		Kind:         "news",
		Source:       entity.SourceManual,
		Title:        "Water supply cut",
		SuccessCount: 2,
	}, nil)

	w := perform(router, http.MethodPost, "/api/admin/notifications/send",
		`{"topic":"news","title":"Water supply cut","title_ta":"குடிநீர் நிறுத்தம்","body":"Ward 12, Tuesday"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "log-1", body["id"])
	assert.Equal(t, float64(2), body["success_count"])
	uc.AssertExpectations(t)
}

func TestSendNotification_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		ucErr     error
		wantCode  int
		wantField string
	}{
		{name: "malformed json", body: `{"topic":`, wantCode: http.StatusBadRequest},
		{name: "bad lang", body: `{"tokens":["t"],"title":"x","lang":"fr"}`, wantCode: http.StatusUnprocessableEntity, wantField: "lang"},
		{name: "bad link", body: `{"topic":"news","title":"x","link":"not a url"}`, wantCode: http.StatusUnprocessableEntity, wantField: "link"},
		{
			name:      "usecase validation",
			body:      `{"title":"x"}`,
			ucErr:     entity.NewValidationError("topic", "exactly one of topic or tokens is required"),
			wantCode:  http.StatusUnprocessableEntity,
			wantField: "topic",
		},
		{
			name:     "log store down",
			body:     `{"topic":"news","title":"x"}`,
			ucErr:    errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockNotificationUseCase)
			router := setupTestRouter(uc)
			if tt.ucErr != nil {
				uc.On("SendManual", mock.Anything).Return(nil, tt.ucErr)
			}

			w := perform(router, http.MethodPost, "/api/admin/notifications/send", tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			body := decodeBody(t, w)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, body["field"])
			}
			if tt.wantCode == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", body["error"])
			}
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "SendManual", mock.Anything)
			}
		})
	}
}

func TestListLogs(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupTestRouter(uc)

	uc.On("ListLogs", entity.LogFilter{
		Kind:   "event",
		Source: entity.SourcePublish,
		Limit:  100,
		Offset: 5,
	}).Return([]*entity.NotificationLog{{ID: "log-1", Kind: "event"}}, int64(6), nil)

	w := perform(router, http.MethodGet, "/api/admin/notifications/logs?kind=event&source=publish&limit=500&offset=5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(6), body["total"])
	assert.Equal(t, float64(100), body["limit"])
	assert.Len(t, body["items"], 1)
	uc.AssertExpectations(t)
}

func TestListLogs_InvalidPaging(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupTestRouter(uc)

	for _, query := range []string{"limit=0", "limit=abc", "offset=-1"} {
		w := perform(router, http.MethodGet, "/api/admin/notifications/logs?"+query, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, query)
	}
	uc.AssertNotCalled(t, "ListLogs", mock.Anything)
}

func TestGetLog(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupTestRouter(uc)

	uc.On("GetLog", "log-1").Return(&entity.NotificationLog{ID: "log-1"}, nil)
	uc.On("GetLog", "missing").Return(nil, entity.ErrNotFound)

	w := perform(router, http.MethodGet, "/api/admin/notifications/logs/log-1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/api/admin/notifications/logs/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribe(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupTestRouter(uc)

	statuses := []entity.TopicStatus{{Topic: "news_ta", OK: true}, {Topic: "all_ta", OK: true}}
	uc.On("Subscribe", entity.TopicChange{Token: "tok-1", Kinds: []string{"news"}, Lang: "ta"}).Return(statuses, nil)

	w := perform(router, http.MethodPost, "/api/notifications/subscribe", `{"token":"tok-1","kinds":["news"],"lang":"ta"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["topics"], 2)
	uc.AssertExpectations(t)
}

func TestSubscribe_Validation(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupTestRouter(uc)

	w := perform(router, http.MethodPost, "/api/notifications/subscribe", `{"kinds":["news"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "token", decodeBody(t, w)["field"])

	w = perform(router, http.MethodPost, "/api/notifications/subscribe", `{"token":"t","kinds":["weather"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	uc.AssertNotCalled(t, "Subscribe", mock.Anything)
}

func TestUnsubscribe_ProviderFailure(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupTestRouter(uc)

	statuses := []entity.TopicStatus{
		{Topic: "news_en", OK: true},
		{Topic: "all_en", OK: false, Error: "unavailable"},
	}
	uc.On("Unsubscribe", mock.Anything).Return(statuses, fmt.Errorf("1 of 2 topics failed: %w", entity.ErrProvider))

	w := perform(router, http.MethodPost, "/api/notifications/unsubscribe", `{"token":"tok-1","kinds":["news"]}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["topics"], 2)
	assert.Contains(t, body["error"], "topics failed")
}
