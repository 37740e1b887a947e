package abstraction

// ActivityStamper records that a user was active. It must not block the caller.
type ActivityStamper interface {
	Stamp(userID string)
}
