package http

import (
	"strconv"

	"hello-madurai/services/content/internal/entity"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

func parseListFilter(c *gin.Context) (entity.ListFilter, error) {
	filter := entity.ListFilter{
		Category: c.Query("category"),
		Status:   entity.Status(c.Query("status")),
		ParentID: c.Query("parent"),
		Query:    c.Query("q"),
		Limit:    defaultLimit,
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		return filter, entity.NewValidationError("status", "must be one of draft, published, archived")
	}

	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return filter, entity.NewValidationError("featured", "must be true or false")
		}
		filter.Featured = &featured
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return filter, entity.NewValidationError("limit", "must be a positive number")
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		filter.Limit = limit
	}

	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filter, entity.NewValidationError("offset", "must not be negative")
		}
		filter.Offset = offset
	}

	return filter, nil
}
