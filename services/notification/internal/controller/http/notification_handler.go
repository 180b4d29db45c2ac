package http

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"hello-madurai/pkg/logger"
	"hello-madurai/services/notification/internal/entity"
	"hello-madurai/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	defaultLogLimit = 20
	maxLogLimit     = 100
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	}
}

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	logger              *logger.Logger
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

// Register mounts the public subscription routes on api and the admin
// routes on admin.
func (h *NotificationHandler) Register(api, admin *gin.RouterGroup, subscribeLimit ...gin.HandlerFunc) {
	public := api.Group("/notifications", subscribeLimit...)
	public.POST("/subscribe", h.Subscribe)
	public.POST("/unsubscribe", h.Unsubscribe)

	notifications := admin.Group("/notifications")
	notifications.POST("/send", h.SendNotification)
	notifications.GET("/logs", h.ListLogs)
	notifications.GET("/logs/:id", h.GetLog)
}

type SendNotificationRequest struct {
	Topic    string   `json:"topic"`
	Tokens   []string `json:"tokens"`
	Lang     string   `json:"lang" binding:"omitempty,oneof=en ta"`
	Title    string   `json:"title"`
	TitleTa  string   `json:"title_ta"`
	Body     string   `json:"body"`
	BodyTa   string   `json:"body_ta"`
	ImageURL string   `json:"image_url" binding:"omitempty,url"`
	Link     string   `json:"link" binding:"omitempty,url"`
}

type TopicRequest struct {
	Token string   `json:"token" binding:"required"`
	Kinds []string `json:"kinds" binding:"omitempty,dive,oneof=news event job"`
	Lang  string   `json:"lang" binding:"omitempty,oneof=en ta"`
}

func (h *NotificationHandler) respondError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	var vErr *entity.ValidationError

	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fieldErrs[0].Error(), "field": fieldErrs[0].Field()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification log not found"})
	default:
		h.logger.Error("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *NotificationHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			h.respondError(c, err)
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body: " + err.Error()})
		return false
	}
	return true
}

// SendNotification godoc
// @Summary      Send a manual notification
// @Description  Send a bilingual push to a topic (expanded per language) or to device tokens
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SendNotificationRequest true "Notification"
// @Success      200  {object}  entity.NotificationLog
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /admin/notifications/send [post]
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req SendNotificationRequest
	if !h.bind(c, &req) {
		return
	}

	log, err := h.notificationUseCase.SendManual(c.Request.Context(), entity.ManualSend{
		Topic:    req.Topic,
		Tokens:   req.Tokens,
		Lang:     req.Lang,
		Title:    req.Title,
		TitleTa:  req.TitleTa,
		Body:     req.Body,
		BodyTa:   req.BodyTa,
		ImageURL: req.ImageURL,
		Link:     req.Link,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// ListLogs godoc
// @Summary      List notification logs
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        kind query string false "Content kind or manual topic"
// @Param        content_id query string false "Content id"
// @Param        source query string false "publish or manual"
// @Param        limit query int false "Page size (max 100)"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/notifications/logs [get]
func (h *NotificationHandler) ListLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLogLimit)))
	if err != nil || limit < 1 {
		h.respondError(c, entity.NewValidationError("limit", "must be a positive number"))
		return
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		h.respondError(c, entity.NewValidationError("offset", "must not be negative"))
		return
	}

	filter := entity.LogFilter{
		Kind:      c.Query("kind"),
		ContentID: c.Query("content_id"),
		Source:    entity.Source(c.Query("source")),
		Limit:     limit,
		Offset:    offset,
	}

	logs, total, err := h.notificationUseCase.ListLogs(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  logs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *NotificationHandler) GetLog(c *gin.Context) {
	log, err := h.notificationUseCase.GetLog(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// Subscribe godoc
// @Summary      Subscribe a device to notification topics
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body TopicRequest true "Device and topics"
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]interface{}
// @Router       /notifications/subscribe [post]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	h.changeTopics(c, h.notificationUseCase.Subscribe)
}

// Unsubscribe godoc
// @Summary      Unsubscribe a device from notification topics
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body TopicRequest true "Device and topics"
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]interface{}
// @Router       /notifications/unsubscribe [post]
func (h *NotificationHandler) Unsubscribe(c *gin.Context) {
	h.changeTopics(c, h.notificationUseCase.Unsubscribe)
}

func (h *NotificationHandler) changeTopics(c *gin.Context, fn func(ctx context.Context, change entity.TopicChange) ([]entity.TopicStatus, error)) {
	var req TopicRequest
	if !h.bind(c, &req) {
		return
	}

	statuses, err := fn(c.Request.Context(), entity.TopicChange{
		Token: req.Token,
		Kinds: req.Kinds,
		Lang:  req.Lang,
	})
	if errors.Is(err, entity.ErrProvider) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "topics": statuses})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": statuses})
}
