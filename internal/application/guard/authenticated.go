package guard

import (
	"context"
	"net/http"
)

// Authenticated passes iff the session has a bound user id.
func Authenticated() Guard {
	return Func(func(_ context.Context, req Request) error {
		if !req.Session.Authenticated() {
			return deny(http.StatusUnauthorized, "Unauthorized: Please log in")
		}

		return nil
	})
}
