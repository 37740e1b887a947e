package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"prana/internal/domain/dto"
)

// bindBlogInput reads a create or update payload from a JSON body or from a
// urlencoded or multipart form.
func bindBlogInput(c echo.Context) (dto.BlogInput, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) ||
		strings.HasPrefix(contentType, echo.MIMEApplicationForm) {
		if _, err := c.FormParams(); err != nil {
			return dto.BlogInput{}, err
		}

		return dto.BlogInputFromForm(c.Request().PostForm)
	}

	var in dto.BlogInput
	if err := json.NewDecoder(c.Request().Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return dto.BlogInput{}, err
	}

	return in, nil
}
