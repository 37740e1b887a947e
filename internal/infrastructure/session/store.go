package session

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"prana/internal/domain/entity"
	"prana/pkg/logger"
)

const (
	defaultCookieName = "prana_session"
	defaultUserIDKey  = "userId"
)

// Store decodes session cookies issued by the account service. It never
// issues or refreshes cookies itself.
type Store struct {
	store     sessions.Store
	name      string
	userIDKey string
}

func New(cfg Config) (*Store, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session secret is empty")
	}

	return NewWithStore(sessions.NewCookieStore([]byte(cfg.Secret)), cfg), nil
}

// NewWithStore wraps an existing gorilla store, e.g. one shared with the issuer.
func NewWithStore(store sessions.Store, cfg Config) *Store {
	name := cfg.CookieName
	if name == "" {
		name = defaultCookieName
	}

	key := cfg.UserIDKey
	if key == "" {
		key = defaultUserIDKey
	}

	return &Store{
		store:     store,
		name:      name,
		userIDKey: key,
	}
}

func (s *Store) Load(r *http.Request) entity.Session {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		logger.Debug("discarding undecodable session cookie", "err", err)

		return entity.Session{}
	}

	userID, _ := sess.Values[s.userIDKey].(string)

	return entity.Session{UserID: userID}
}
