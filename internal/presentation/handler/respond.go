package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prana/internal/domain/dto"
)

const serverErrorMessage = "Internal server error"

// respondError answers with the envelope for a failed usecase call. Client
// errors carry the error text as message; server errors keep a generic
// message and pass the cause in the error field.
func respondError(c echo.Context, status int, err error, serverMessage string) error {
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		if serverMessage == "" {
			serverMessage = serverErrorMessage
		}

		return c.JSON(status, dto.FailWithError(serverMessage, err))
	}

	return c.JSON(status, dto.Fail(err.Error()))
}
