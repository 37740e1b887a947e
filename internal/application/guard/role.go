package guard

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"prana/internal/domain/repository/database"
)

// HasRole passes iff the session user exists and has exactly role. It looks
// the user up on every call. Lookup failures other than not-found are
// returned unclassified.
func HasRole(users database.UserRetriever, role string) Guard {
	return Func(func(ctx context.Context, req Request) error {
		if !req.Session.Authenticated() {
			return deny(http.StatusUnauthorized, "Authentication required")
		}

		user, err := users.GetUserByID(ctx, req.Session.UserID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return deny(http.StatusNotFound, "User not found")
			}

			return fmt.Errorf("role check for user %s: %w", req.Session.UserID, err)
		}

		if user.Role != role {
			return deny(http.StatusForbidden, fmt.Sprintf("Access denied. %s privilege required", role))
		}

		return nil
	})
}
