package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prana/internal/application/usecase/abstraction"
	"prana/internal/domain/dto"
	"prana/internal/presentation"
)

type UpdateHandler struct {
	updater abstraction.Updater
}

func NewUpdateHandler(updater abstraction.Updater) *UpdateHandler {
	return &UpdateHandler{
		updater: updater,
	}
}

// HandleUpdate handles PUT /blog/:id requests with a partial payload.
func (h *UpdateHandler) HandleUpdate(c echo.Context) error {
	in, err := bindBlogInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	}

	blog, status, err := h.updater.UpdateBlog(c.Request().Context(), c.Param(presentation.IDParam), in,
		presentation.UploadsFrom(c))
	if err != nil {
		return respondError(c, status, err, "")
	}

	return c.JSON(http.StatusOK, dto.OK(blog))
}
