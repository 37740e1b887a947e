package middleware

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"prana/internal/domain/dto"
	"prana/internal/domain/entity"
	"prana/internal/domain/repository/minio"
	"prana/internal/presentation"
	"prana/pkg/logger"
)

const uploadErrorMessage = "File upload error"

// Upload stores at most one image per named multipart field and exposes the
// results through presentation.UploadsFrom. If the request fails further down
// the chain, the stored images are removed again.
func Upload(uploader minio.Uploader, remover minio.Remover, fields ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
				return next(ctx)
			}

			form, err := ctx.MultipartForm()
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, dto.FailWithError(uploadErrorMessage, err))
			}

			uploads := entity.Uploads{}
			for _, field := range fields {
				files := form.File[field]
				if len(files) == 0 {
					continue
				}

				if len(files) > 1 {
					rollback(ctx, remover, uploads)

					return ctx.JSON(http.StatusBadRequest, dto.FailWithError(uploadErrorMessage,
						fmt.Errorf("field %s accepts a single file", field)))
				}

				result, status, err := store(ctx, uploader, files[0], field)
				if err != nil {
					rollback(ctx, remover, uploads)

					return ctx.JSON(status, dto.FailWithError(uploadErrorMessage, err))
				}

				uploads[field] = result
			}

			ctx.Set(presentation.UploadsKey, uploads)

			err = next(ctx)
			if err != nil || ctx.Response().Status >= http.StatusBadRequest {
				rollback(ctx, remover, uploads)
			}

			return err
		}
	}
}

func store(ctx echo.Context, uploader minio.Uploader, fh *multipart.FileHeader,
	field string,
) (entity.UploadResult, int, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.UploadResult{}, http.StatusBadRequest, err
	}
	defer f.Close()

	result, err := uploader.UploadImage(ctx.Request().Context(), f, fh.Size, field)
	if err != nil {
		return entity.UploadResult{}, statusOfUpload(err), err
	}

	return result, http.StatusOK, nil
}

func rollback(ctx echo.Context, remover minio.Remover, uploads entity.Uploads) {
	rctx := context.WithoutCancel(ctx.Request().Context())

	for field, u := range uploads {
		if err := remover.Remove(rctx, u.Bucket, u.Object); err != nil {
			logger.Error("failed to remove uploaded image", "field", field, "object", u.Object, "err", err)
		}
	}
}

func statusOfUpload(err error) int {
	if errors.Is(err, minio.ErrUnsupportedType) || errors.Is(err, minio.ErrTooLarge) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
