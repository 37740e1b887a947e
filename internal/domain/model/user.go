package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account record the role guard and activity stamping read and touch.
// Accounts are issued by another service.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"          json:"_id"`
	Name         string             `bson:"name"                   json:"name"`
	Email        string             `bson:"email"                  json:"email"`
	Role         string             `bson:"role"                   json:"role"`
	LastActivity *time.Time         `bson:"lastActivity,omitempty" json:"lastActivity,omitempty"`
}
