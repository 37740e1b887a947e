package database

import (
	"context"

	"prana/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Blog, error)
}
