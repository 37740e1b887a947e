package abstraction

import "context"

// Deleter defines the interface for deleting blogs.
type Deleter interface {
	DeleteBlog(ctx context.Context, id string) (int, error)
}
