package http

import (
	"net/http"

	"hello-madurai/pkg/locale"
	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/middleware"
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BindFunc decodes a request body into a record.
type BindFunc[E any] func(c *gin.Context) (*E, error)

// ViewFunc renders a record for readers in one language.
type ViewFunc[E any] func(item *E, loc locale.Locale) gin.H

// bindJSON decodes a JSON body into R and converts it with toEntity.
func bindJSON[R any, E any](toEntity func(*R) *E) BindFunc[E] {
	return func(c *gin.Context) (*E, error) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return toEntity(&req), nil
	}
}

var trackActions = map[string]string{
	entity.CounterViews:     "view",
	entity.CounterDownloads: "download",
	entity.CounterPlays:     "play",
}

// ResourceHandler serves the admin and reader endpoints of one content kind.
type ResourceHandler[E any] struct {
	useCase usecase.ContentUseCase[E]
	bind    BindFunc[E]
	view    ViewFunc[E]
	logger  *logger.Logger
}

func NewResourceHandler[E any](useCase usecase.ContentUseCase[E], bind BindFunc[E], view ViewFunc[E], logger *logger.Logger) *ResourceHandler[E] {
	return &ResourceHandler[E]{
		useCase: useCase,
		bind:    bind,
		view:    view,
		logger:  logger,
	}
}

func (h *ResourceHandler[E]) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// RegisterPublic mounts the reader endpoints and one tracking endpoint per counter.
func (h *ResourceHandler[E]) RegisterPublic(g *gin.RouterGroup, counters ...string) {
	g.GET("", h.PublicList)
	g.GET("/:id", h.PublicGet)
	for _, counter := range counters {
		g.POST("/:id/"+trackActions[counter], h.Track(counter))
	}
}

// RegisterWrites mounts create, update and delete on a public collection path.
func (h *ResourceHandler[E]) RegisterWrites(g *gin.RouterGroup) {
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *ResourceHandler[E]) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	items, total, err := h.useCase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"total":  total,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

func (h *ResourceHandler[E]) Create(c *gin.Context) {
	item, err := h.bind(c)
	if err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	created, err := h.useCase.Create(c.Request.Context(), item)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("Created %s by admin %s", h.useCase.Kind(), c.GetString(middleware.ContextUserID))
	c.JSON(http.StatusCreated, created)
}

func (h *ResourceHandler[E]) Get(c *gin.Context) {
	item, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[E]) Update(c *gin.Context) {
	item, err := h.bind(c)
	if err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	updated, err := h.useCase.Update(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ResourceHandler[E]) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("Deleted %s %s by admin %s", h.useCase.Kind(), id, c.GetString(middleware.ContextUserID))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func (h *ResourceHandler[E]) PublicList(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	items, total, err := h.useCase.ListPublic(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	loc := middleware.LocaleFrom(c)
	views := make([]gin.H, len(items))
	for i, item := range items {
		views[i] = h.view(item, loc)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  views,
		"total":  total,
		"limit":  filter.Limit,
		"offset": filter.Offset,
		"lang":   loc,
	})
}

func (h *ResourceHandler[E]) PublicGet(c *gin.Context) {
	item, err := h.useCase.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, h.view(item, middleware.LocaleFrom(c)))
}

// Track counts one engagement of the current viewer.
func (h *ResourceHandler[E]) Track(counter string) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := c.GetString(middleware.ContextUserID)
		if viewer == "" {
			viewer = c.ClientIP()
		}

		counted, err := h.useCase.Track(c.Request.Context(), c.Param("id"), counter, viewer)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"counted": counted})
	}
}
