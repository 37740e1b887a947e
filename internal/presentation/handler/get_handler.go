package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prana/internal/application/usecase/abstraction"
	"prana/internal/domain/dto"
	"prana/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /blog/:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	blog, status, err := h.getter.GetBlog(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, status, err, "")
	}

	return c.JSON(http.StatusOK, dto.OK(blog))
}
