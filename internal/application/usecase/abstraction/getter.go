package abstraction

import (
	"context"

	"prana/internal/domain/model"
)

// Getter defines the interface for retrieving a single blog.
type Getter interface {
	GetBlog(ctx context.Context, id string) (*model.Blog, int, error)
}

type UserGetter interface {
	GetUser(ctx context.Context, id string) (*model.User, int, error)
}
