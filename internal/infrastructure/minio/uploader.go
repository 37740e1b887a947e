package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"prana/internal/domain/entity"
	domain "prana/internal/domain/repository/minio"
	"prana/pkg/logger"
	"prana/pkg/utils"
)

const defaultMaxFileSize = 5 * 1024 * 1024

type Uploader struct {
	minioClient *minio.Client
	cfg         UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (u *Uploader) maxFileSize() int64 {
	if u.cfg.MaxFileSize <= 0 {
		return defaultMaxFileSize
	}

	return u.cfg.MaxFileSize
}

// UploadImage stores one image read from body. The content type is sniffed,
// not trusted from the client. fileSize may be -1 when unknown.
func (u *Uploader) UploadImage(ctx context.Context, body io.Reader, fileSize int64,
	field string,
) (entity.UploadResult, error) {
	maxSize := u.maxFileSize()
	if fileSize > maxSize {
		return entity.UploadResult{}, fmt.Errorf("%w: %d bytes, limit is %d", domain.ErrTooLarge, fileSize, maxSize)
	}

	// One extra byte tells an oversized stream apart from one at the limit.
	data, err := io.ReadAll(io.LimitReader(body, maxSize+1))
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("read error: %w", err)
	}
	if len(data) == 0 {
		return entity.UploadResult{}, fmt.Errorf("%w: empty file", domain.ErrUnsupportedType)
	}
	if int64(len(data)) > maxSize {
		return entity.UploadResult{}, fmt.Errorf("%w: limit is %d bytes", domain.ErrTooLarge, maxSize)
	}

	detected := mimetype.Detect(data).String()
	ext, ok := utils.ImageExtension(detected)
	if !ok {
		return entity.UploadResult{}, fmt.Errorf("%w: detected %s", domain.ErrUnsupportedType, detected)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	objectName := path.Join(u.cfg.Folder, fmt.Sprintf("%s-%s%s", field, uuid.New().String(), ext))

	_, err = u.minioClient.PutObject(ctx, u.cfg.Bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: detected,
		})
	if err != nil {
		logger.Error("failed to upload image", "object", objectName, "err", err)

		return entity.UploadResult{}, fmt.Errorf("upload failed: %w", err)
	}

	return entity.UploadResult{
		Field:    field,
		Bucket:   u.cfg.Bucket,
		Object:   objectName,
		Location: fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.cfg.PublicURL, "/"), u.cfg.Bucket, objectName),
		Type:     detected,
		Size:     int64(len(data)),
	}, nil
}
