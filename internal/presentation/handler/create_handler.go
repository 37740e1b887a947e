package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prana/internal/application/usecase/abstraction"
	"prana/internal/domain/dto"
	"prana/internal/presentation"
)

type CreateHandler struct {
	creator abstraction.Creator
}

func NewCreateHandler(creator abstraction.Creator) *CreateHandler {
	return &CreateHandler{
		creator: creator,
	}
}

// HandleCreate handles POST /blogs requests.
func (h *CreateHandler) HandleCreate(c echo.Context) error {
	in, err := bindBlogInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	}

	blog, status, err := h.creator.CreateBlog(c.Request().Context(), in, presentation.UploadsFrom(c))
	if err != nil {
		return respondError(c, status, err, "")
	}

	return c.JSON(http.StatusCreated, dto.OK(blog))
}
