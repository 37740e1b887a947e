package presentation

const (
	SessionKey = "session"
	UploadsKey = "uploads"

	IDParam     = "id"
	UserIDParam = "userId"
)
