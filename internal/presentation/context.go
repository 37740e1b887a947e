package presentation

import (
	"github.com/labstack/echo/v4"

	"prana/internal/domain/entity"
)

// SessionFrom returns the session loaded for c, or an empty one.
func SessionFrom(c echo.Context) entity.Session {
	s, _ := c.Get(SessionKey).(entity.Session)

	return s
}

// UploadsFrom returns the images stored for c by the upload middleware.
func UploadsFrom(c echo.Context) entity.Uploads {
	u, _ := c.Get(UploadsKey).(entity.Uploads)

	return u
}
