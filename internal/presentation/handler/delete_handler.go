package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prana/internal/application/usecase/abstraction"
	"prana/internal/domain/dto"
	"prana/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /blog/:id requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	status, err := h.deleter.DeleteBlog(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, status, err, "")
	}

	return c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Blog deleted successfully",
	})
}
