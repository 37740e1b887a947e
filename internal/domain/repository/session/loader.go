package session

import (
	"net/http"

	"prana/internal/domain/entity"
)

// Loader reads the session bound to a request. Requests without a valid
// session yield an empty entity.Session, not an error.
type Loader interface {
	Load(r *http.Request) entity.Session
}
