package database

import (
	"context"
	"time"

	"prana/internal/domain/model"
)

type UserRetriever interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

type ActivityWriter interface {
	TouchLastActivity(ctx context.Context, id string, at time.Time) error
}
