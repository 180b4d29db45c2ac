package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/s3"
	"hello-madurai/services/content/internal/entity"

	"github.com/google/uuid"
)

type UploadKind string

const (
	UploadImage    UploadKind = "image"
	UploadAudio    UploadKind = "audio"
	UploadVideo    UploadKind = "video"
	UploadDocument UploadKind = "document"
)

var allowedExtensions = map[UploadKind]map[string]string{
	UploadImage: {
		".jpg": "image/jpeg", ".jpeg": "image/jpeg", ".png": "image/png",
		".webp": "image/webp", ".gif": "image/gif",
	},
	UploadAudio: {
		".mp3": "audio/mpeg", ".m4a": "audio/mp4", ".aac": "audio/aac",
		".ogg": "audio/ogg", ".wav": "audio/wav",
	},
	UploadVideo: {
		".mp4": "video/mp4", ".webm": "video/webm", ".mov": "video/quicktime",
	},
	UploadDocument: {
		".pdf": "application/pdf",
	},
}

type Upload struct {
	Kind     UploadKind
	Filename string
	Size     int64
	Body     io.ReadSeeker
}

type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
}

type UploadUseCase interface {
	Upload(ctx context.Context, in Upload) (*UploadResult, error)
}

type uploadUseCase struct {
	uploader s3.Uploader
	maxSize  int64
	logger   *logger.Logger
	now      func() time.Time
}

func NewUploadUseCase(uploader s3.Uploader, maxSize int64, logger *logger.Logger) UploadUseCase {
	return &uploadUseCase{
		uploader: uploader,
		maxSize:  maxSize,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *uploadUseCase) Upload(ctx context.Context, in Upload) (*UploadResult, error) {
	allowed, ok := allowedExtensions[in.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", entity.ErrInvalidUpload, in.Kind)
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	contentType, ok := allowed[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s files are not accepted as %s", entity.ErrInvalidUpload, ext, in.Kind)
	}

	if in.Size <= 0 {
		return nil, fmt.Errorf("%w: empty file", entity.ErrInvalidUpload)
	}
	if uc.maxSize > 0 && in.Size > uc.maxSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", entity.ErrInvalidUpload, uc.maxSize)
	}

	if uc.uploader == nil {
		return nil, fmt.Errorf("%w: file storage is not configured", entity.ErrUploadFailed)
	}

	key := fmt.Sprintf("%ss/%s/%s%s", in.Kind, uc.now().UTC().Format("2006/01"), uuid.New().String(), ext)
	url, err := uc.uploader.Upload(ctx, key, in.Body, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload %s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUploadFailed, err)
	}

	return &UploadResult{URL: url, Key: key, ContentType: contentType}, nil
}
