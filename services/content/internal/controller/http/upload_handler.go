package http

import (
	"net/http"

	"hello-madurai/pkg/logger"
	"hello-madurai/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUseCase usecase.UploadUseCase
	logger        *logger.Logger
}

func NewUploadHandler(uploadUseCase usecase.UploadUseCase, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
		logger:        logger,
	}
}

type UploadRequest struct {
	Kind string `form:"kind" binding:"required,oneof=image audio video document"`
}

// Upload godoc
// @Summary      Upload a media file
// @Description  Store an image, audio, video or PDF file and return its public URL
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        kind formData string true "File kind" Enums(image, audio, video, document)
// @Param        file formData file true "File to upload"
// @Success      201  {object}  usecase.UploadResult
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /admin/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required", "field": "file"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "field": "file"})
		return
	}
	defer file.Close()

	result, err := h.uploadUseCase.Upload(c.Request.Context(), usecase.Upload{
		Kind:     usecase.UploadKind(req.Kind),
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
