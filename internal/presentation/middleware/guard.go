package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"prana/internal/application/guard"
	"prana/internal/domain/dto"
	"prana/internal/presentation"
)

// Guards runs guards in order before the handler. Refusals are answered
// here; other guard errors go to the server's HTTPErrorHandler.
func Guards(guards ...guard.Guard) echo.MiddlewareFunc {
	chain := guard.Chain(guards...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			err := chain.Check(ctx.Request().Context(), requestOf(ctx))
			if err != nil {
				var denial *guard.Denial
				if errors.As(err, &denial) {
					return ctx.JSON(denial.Status, dto.Fail(denial.Message))
				}

				return err
			}

			return next(ctx)
		}
	}
}

func requestOf(ctx echo.Context) guard.Request {
	names := ctx.ParamNames()
	values := ctx.ParamValues()

	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}

	return guard.Request{
		Session: presentation.SessionFrom(ctx),
		Params:  params,
	}
}
