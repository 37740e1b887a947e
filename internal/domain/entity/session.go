package entity

// Session is the per-request session state guards decide on. An empty UserID
// means no one is logged in.
type Session struct {
	UserID string
}

func (s Session) Authenticated() bool {
	return s.UserID != ""
}
