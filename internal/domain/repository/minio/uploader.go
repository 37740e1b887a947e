package minio

import (
	"context"
	"errors"
	"io"

	"prana/internal/domain/entity"
)

var (
	ErrUnsupportedType = errors.New("not an image, please upload only images")
	ErrTooLarge        = errors.New("file too large")
)

type Uploader interface {
	UploadImage(ctx context.Context, body io.Reader, fileSize int64, field string) (entity.UploadResult, error)
}
