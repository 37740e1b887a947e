package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prana/internal/application/usecase/abstraction"
	"prana/internal/domain/dto"
	"prana/internal/domain/query"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /blogs requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	params, err := query.ParseBlogParams(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	}

	page, status, err := h.lister.ListBlogs(c.Request().Context(), params)
	if err != nil {
		return respondError(c, status, err, "Error retrieving blogs")
	}

	return c.JSON(http.StatusOK, dto.ListResponse{
		Success:     true,
		Count:       len(page.Blogs),
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Data:        page.Blogs,
	})
}
