package middleware

import (
	"github.com/labstack/echo/v4"

	"prana/internal/application/usecase/abstraction"
	"prana/internal/presentation"
)

// TrackActivity stamps the session user's last activity and always continues.
func TrackActivity(stamper abstraction.ActivityStamper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if s := presentation.SessionFrom(ctx); s.Authenticated() {
				stamper.Stamp(s.UserID)
			}

			return next(ctx)
		}
	}
}
