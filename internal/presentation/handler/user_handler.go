package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prana/internal/application/usecase/abstraction"
	"prana/internal/domain/dto"
	"prana/internal/presentation"
)

type UserHandler struct {
	getter abstraction.UserGetter
}

func NewUserHandler(getter abstraction.UserGetter) *UserHandler {
	return &UserHandler{
		getter: getter,
	}
}

// HandleGetUser handles GET /users/:userId requests.
func (h *UserHandler) HandleGetUser(c echo.Context) error {
	user, status, err := h.getter.GetUser(c.Request().Context(), c.Param(presentation.UserIDParam))
	if err != nil {
		return respondError(c, status, err, "")
	}

	return c.JSON(http.StatusOK, dto.OK(user))
}
