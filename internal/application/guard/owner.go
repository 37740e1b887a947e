package guard

import (
	"context"
	"net/http"
)

// Owner passes iff the session user id equals the path parameter param,
// compared byte for byte.
func Owner(param string) Guard {
	return Func(func(_ context.Context, req Request) error {
		if !req.Session.Authenticated() || req.Session.UserID != req.Param(param) {
			return deny(http.StatusForbidden, "Access denied. You can only access your own resources.")
		}

		return nil
	})
}
