package middleware

import (
	"github.com/labstack/echo/v4"

	"prana/internal/domain/repository/session"
	"prana/internal/presentation"
)

// LoadSession binds the request's session to the echo context. It never
// rejects a request; guards decide what a missing session means.
func LoadSession(loader session.Loader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(presentation.SessionKey, loader.Load(ctx.Request()))

			return next(ctx)
		}
	}
}
