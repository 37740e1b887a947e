package entity

import "time"

const (
	BlogCreated = "blog.created"
	BlogUpdated = "blog.updated"
	BlogDeleted = "blog.deleted"
)

// BlogEvent is published on the event stream after a blog write commits.
type BlogEvent struct {
	Type string    `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}
