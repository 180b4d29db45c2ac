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
	"time"

	"hello-madurai/pkg/logger"
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNewsUseCase is a mock implementation of ContentUseCase for news
type MockNewsUseCase struct {
	mock.Mock
}

func (m *MockNewsUseCase) Kind() entity.Kind {
	return entity.KindNews
}

func (m *MockNewsUseCase) Create(ctx context.Context, item *entity.News) (*entity.News, error) {
	args := m.Called(item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockNewsUseCase) Get(ctx context.Context, idOrSlug string) (*entity.News, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockNewsUseCase) GetPublic(ctx context.Context, idOrSlug string) (*entity.News, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockNewsUseCase) List(ctx context.Context, filter entity.ListFilter) ([]*entity.News, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.News), args.Get(1).(int64), args.Error(2)
}

func (m *MockNewsUseCase) ListPublic(ctx context.Context, filter entity.ListFilter) ([]*entity.News, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.News), args.Get(1).(int64), args.Error(2)
}

func (m *MockNewsUseCase) Update(ctx context.Context, id string, item *entity.News) (*entity.News, error) {
	args := m.Called(id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockNewsUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNewsUseCase) Track(ctx context.Context, id, counter, viewer string) (bool, error) {
	args := m.Called(id, counter, viewer)
	return args.Bool(0), args.Error(1)
}

func (m *MockNewsUseCase) PublishDue(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(now)
	return args.Int(0), args.Error(1)
}

var _ usecase.ContentUseCase[entity.News] = (*MockNewsUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testLogger() *logger.Logger {
	return logger.NewWithOptions(logger.Options{Output: io.Discard})
}

func newMockNewsRouter(uc *MockNewsUseCase) *gin.Engine {
	handler := NewResourceHandler[entity.News](uc, bindJSON((*NewsRequest).toEntity), newsView, testLogger())
	router := setupTestRouter()
	handler.RegisterAdmin(router.Group("/news"))
	handler.RegisterPublic(router.Group("/public/news"), entity.CounterViews)
	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreate_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantField  string
	}{
		{
			name:       "malformed json",
			body:       `{"title": "Road Works"`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong json type",
			body:       `{"title": 42}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "binding rule",
			body:       `{"title": "Road Works", "image_url": "not a url"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "image_url",
		},
		{
			name:       "unknown status",
			body:       `{"title": "Road Works", "status": "live"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "status",
		},
		{
			name:       "entity validation",
			body:       `{"title": "", "category": "corporation"}`,
			ucErr:      entity.NewValidationError("title", "is required"),
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "title",
		},
		{
			name:       "store failure",
			body:       `{"title": "Road Works", "category": "corporation"}`,
			ucErr:      errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockNewsUseCase)
			if tt.ucErr != nil {
				uc.On("Create", mock.AnythingOfType("*entity.News")).Return(nil, tt.ucErr)
			}
			router := newMockNewsRouter(uc)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/news", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.NotEmpty(t, body["error"])
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, body["field"])
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, body["error"], "connection reset")
			}
			uc.AssertExpectations(t)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := new(MockNewsUseCase)
	uc.On("Get", "missing").Return(nil, entity.ErrNotFound)
	router := newMockNewsRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/news/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	uc.AssertExpectations(t)
}

func TestDelete_Conflict(t *testing.T) {
	uc := new(MockNewsUseCase)
	uc.On("Delete", "n-1").Return(fmt.Errorf("news n-1 has 2 children: %w", entity.ErrHasChildren))
	router := newMockNewsRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/news/n-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestList_FilterParsing(t *testing.T) {
	uc := new(MockNewsUseCase)
	featured := true
	uc.On("List", entity.ListFilter{
		Category: "corporation",
		Featured: &featured,
		Query:    "road",
		Limit:    maxLimit,
		Offset:   40,
	}).Return([]*entity.News{{ID: "n-1", Title: "Road Works Begin"}}, int64(41), nil)
	router := newMockNewsRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/news?category=corporation&featured=true&q=road&limit=500&offset=40", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(41), body["total"])
	assert.Equal(t, float64(maxLimit), body["limit"])
	assert.Len(t, body["items"], 1)
	uc.AssertExpectations(t)
}

func TestList_InvalidFilter(t *testing.T) {
	tests := []struct {
		query string
		field string
	}{
		{"featured=maybe", "featured"},
		{"limit=0", "limit"},
		{"limit=ten", "limit"},
		{"offset=-1", "offset"},
		{"status=live", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			router := newMockNewsRouter(new(MockNewsUseCase))

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/news?"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, tt.field, decodeBody(t, w)["field"])
		})
	}
}

func TestTrack_UsesClientIPWithoutUser(t *testing.T) {
	uc := new(MockNewsUseCase)
	uc.On("Track", "n-1", entity.CounterViews, "192.0.2.10").Return(true, nil)
	router := newMockNewsRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/public/news/n-1/view", nil)
	req.RemoteAddr = "192.0.2.10:51234"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["counted"])
	uc.AssertExpectations(t)
}
