package http

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"hello-madurai/pkg/logger"
	"hello-madurai/services/content/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return field.Name
		})
	}
}

// writeBindError answers a request body that could not be bound.
func writeBindError(c *gin.Context, log *logger.Logger, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body: " + err.Error()})
}

func writeError(c *gin.Context, log *logger.Logger, err error) {
	var fieldErrs validator.ValidationErrors
	var vErr *entity.ValidationError

	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		fe := fieldErrs[0]
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fe.Field() + ": " + describeTag(fe),
			"field": fe.Field(),
		})
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, entity.ErrHasChildren):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, entity.ErrInvalidUpload):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "field": "file"})
	case errors.Is(err, entity.ErrUploadFailed):
		log.Error("Upload failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "File storage is unavailable"})
	default:
		log.Error("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}
