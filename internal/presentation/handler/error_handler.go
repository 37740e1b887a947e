package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"prana/internal/domain/dto"
	"prana/pkg/logger"
)

// ErrorHandler is the server's HTTPErrorHandler. Everything that reaches it
// unclassified is answered as a 500 envelope with the cause passed through.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status = http.StatusInternalServerError
		body   dto.Response
	)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		body = dto.Fail(fmt.Sprint(he.Message))
	} else {
		logger.Error("unhandled request error", "method", c.Request().Method,
			"path", c.Request().URL.Path, "err", err)
		body = dto.FailWithError(serverErrorMessage, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}

	if writeErr != nil {
		logger.Error("failed to write error response", "err", writeErr)
	}
}
